package basecolor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

func TestStatic(t *testing.T) {
	got, err := Static("#ff0000").BaseColor(context.Background())
	if err != nil || got != "#ff0000" {
		t.Fatalf("Static = %q, %v", got, err)
	}
}

func TestReader_FirstNonBlankLine(t *testing.T) {
	src := NewReader(strings.NewReader("\n   \n#3498db\n#ffffff\n"))

	got, err := src.BaseColor(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#3498db" {
		t.Fatalf("expected first colour line, got %q", got)
	}
}

func TestReader_Empty(t *testing.T) {
	_, err := NewReader(strings.NewReader("\n\n")).BaseColor(context.Background())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

type failingSource struct{ err error }

func (f failingSource) BaseColor(_ context.Context) (string, error) { return "", f.err }

func TestFallback(t *testing.T) {
	src := Fallback{Static(""), nil, Static("  "), Static("#00ff00"), Static("#0000ff")}

	got, err := src.BaseColor(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#00ff00" {
		t.Fatalf("expected first non-blank source, got %q", got)
	}
}

func TestFallback_AllBlank(t *testing.T) {
	_, err := Fallback{Static("")}.BaseColor(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFallback_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Fallback{failingSource{err: boom}, Static("#ffffff")}.BaseColor(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}
