package tui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/usecase"
)

func testDeps() Deps {
	return Deps{
		Palettes:    usecase.NewGeneratePalette(),
		Base:        "#ff0000",
		Locale:      domain.LocaleEnglish,
		SwatchWidth: 9,
	}
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_GenerateFromInput(t *testing.T) {
	m := newModel(testDeps())

	m, cmd := send(t, m, key("enter"))
	if cmd == nil {
		t.Fatalf("expected generate command")
	}
	if !m.busy {
		t.Fatalf("expected busy while generating")
	}

	msg, ok := cmd().(paletteGeneratedMsg)
	if !ok {
		t.Fatalf("expected paletteGeneratedMsg")
	}
	if msg.err != nil {
		t.Fatalf("generate error: %v", msg.err)
	}

	m, _ = send(t, m, msg)
	if !m.hasPalette || m.busy {
		t.Fatalf("expected palette shown, busy=%v", m.busy)
	}
	if n := len(m.entries.Items()); n != 5 {
		t.Fatalf("expected 5 entries, got %d", n)
	}
	first := m.entries.Items()[0].(entryItem)
	if first.entry.Color != "#00ffff" || first.name != "Complementary" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
}

func TestModel_InvalidInputShowsToast(t *testing.T) {
	m := newModel(testDeps())

	m, _ = send(t, m, paletteGeneratedMsg{input: "#zzzzzz", err: domain.InvalidFormat("colormath.NormalizeHex", "bad")})

	if m.hasPalette {
		t.Fatalf("expected no palette")
	}
	if !strings.HasPrefix(m.toast, "Invalid colour") {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if !strings.Contains(m.View(), "Invalid colour") {
		t.Fatalf("expected toast in view")
	}
}

func TestModel_AdoptSelectedEntry(t *testing.T) {
	deps := testDeps()
	m := newModel(deps)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})

	p, err := deps.Palettes.Generate(context.Background(), "#ff0000")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	m, _ = send(t, m, paletteGeneratedMsg{input: "#ff0000", palette: p})

	m, _ = send(t, m, key("tab"))
	if m.focus != focusList {
		t.Fatalf("expected list focus")
	}

	m, _ = send(t, m, key("down"))
	m, cmd := send(t, m, key("enter"))
	if cmd == nil {
		t.Fatalf("expected generate command for selected entry")
	}
	if m.focus != focusInput {
		t.Fatalf("expected focus back on input")
	}
	if got := m.input.Value(); got != "#00bfff" {
		t.Fatalf("expected second entry adopted, got %q", got)
	}

	msg := cmd().(paletteGeneratedMsg)
	if msg.palette.Base != "#00bfff" {
		t.Fatalf("expected regenerated base #00bfff, got %q", msg.palette.Base)
	}
}

func TestModel_TabWithoutPaletteStaysOnInput(t *testing.T) {
	m := newModel(testDeps())

	m, _ = send(t, m, key("tab"))
	if m.focus != focusInput {
		t.Fatalf("expected input focus without palette")
	}
}

func TestModel_LocaleFallsBack(t *testing.T) {
	deps := testDeps()
	deps.Locale = "fr"
	m := newModel(deps)
	if m.deps.Locale != domain.LocaleEnglish {
		t.Fatalf("expected fallback to en, got %q", m.deps.Locale)
	}
}

func TestSafeModel_ForwardsUpdates(t *testing.T) {
	deps := testDeps()
	p, err := deps.Palettes.Generate(context.Background(), "#00ff00")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s := wrapSafe(newModel(deps), nil)
	next, _ := s.Update(paletteGeneratedMsg{input: "#00ff00", palette: p})

	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if !sm.m.hasPalette || sm.m.palette.Base != "#00ff00" {
		t.Fatalf("expected inner model updated, got %+v", sm.m.palette)
	}
	if !strings.Contains(sm.View(), "#00ff00") {
		t.Fatalf("expected base in view")
	}
}

func TestModel_DebugFooter(t *testing.T) {
	deps := testDeps()
	if strings.Contains(newModel(deps).helpLine(), "debug") {
		t.Fatalf("expected no debug marker by default")
	}

	deps.Debug = true
	if !strings.Contains(newModel(deps).View(), "debug logging on") {
		t.Fatalf("expected debug marker in view")
	}
}

func TestCmdGenerate_DebugLogsSuccess(t *testing.T) {
	var logs bytes.Buffer
	deps := testDeps()
	deps.Debug = true
	deps.Logger = slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	msg := cmdGenerate(deps, "#ff0000")().(paletteGeneratedMsg)
	if msg.err != nil {
		t.Fatalf("generate error: %v", msg.err)
	}
	if !strings.Contains(logs.String(), "tui.generate.ok") {
		t.Fatalf("expected debug log line, got %q", logs.String())
	}

	logs.Reset()
	deps.Debug = false
	_ = cmdGenerate(deps, "#ff0000")()
	if strings.Contains(logs.String(), "tui.generate.ok") {
		t.Fatalf("expected no success line without debug, got %q", logs.String())
	}
}
