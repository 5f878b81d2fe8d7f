package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	want := filepath.Join(tmp, ".colorselect", "logs", "colorselect.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time to be set")
	}

	L().Debug("palette.generated", "base", "#ff0000")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger to be reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), b)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "palette.generated" || entry["base"] != "#ff0000" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestSetup_FailsOnUnwritableRoot(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanup, err := Setup(Config{Root: blocker})
	if err == nil {
		t.Fatalf("expected error when root is a file")
	}
	if cleanup != nil {
		t.Fatalf("expected nil cleanup on error")
	}
	if IsReady() == nil {
		t.Fatalf("expected discard logger after failure")
	}
	L().Info("ignored")
}

func TestSetup_MirrorsRecords(t *testing.T) {
	var mirror bytes.Buffer

	cleanup, err := Setup(Config{Root: t.TempDir(), Mirror: &mirror})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Info("serve.listening", "addr", "127.0.0.1:0")
	L().Debug("dropped.at.info")

	out := mirror.String()
	if !strings.Contains(out, "serve.listening") {
		t.Fatalf("expected mirrored record, got %q", out)
	}
	if strings.Contains(out, "dropped.at.info") {
		t.Fatalf("debug record should be filtered at info level")
	}
}

func TestNew_TimeIsUTC(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("x")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ts, _ := entry["time"].(string)
	if !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %q", ts)
	}
}
