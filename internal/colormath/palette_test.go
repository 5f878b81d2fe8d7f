package colormath

import (
	"errors"
	"testing"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

func TestGeneratePalette_Red(t *testing.T) {
	got, err := GeneratePalette("#ff0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.PaletteEntry{
		{Label: domain.HarmonyComplementary, Color: "#00ffff"},
		{Label: domain.HarmonyComplementary, Color: "#00bfff"},
		{Label: domain.HarmonyAnalogous, Color: "#ff8000"},
		{Label: domain.HarmonyAnalogous, Color: "#ff0080"},
		{Label: domain.HarmonyTriadic, Color: "#00ff00"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGeneratePalette_LabelOrder(t *testing.T) {
	order := []domain.Harmony{
		domain.HarmonyComplementary,
		domain.HarmonyComplementary,
		domain.HarmonyAnalogous,
		domain.HarmonyAnalogous,
		domain.HarmonyTriadic,
	}

	for _, base := range []domain.HexColor{"#3498db", "#808080", "#000000", "#FFFFFF", "#9b59b6"} {
		got, err := GeneratePalette(base)
		if err != nil {
			t.Fatalf("GeneratePalette(%q): %v", base, err)
		}
		if len(got) != PaletteSize {
			t.Fatalf("GeneratePalette(%q): expected %d entries, got %d", base, PaletteSize, len(got))
		}
		for i, e := range got {
			if e.Label != order[i] {
				t.Errorf("GeneratePalette(%q)[%d].Label = %q, want %q", base, i, e.Label, order[i])
			}
			if _, err := HexToRGB(e.Color); err != nil {
				t.Errorf("GeneratePalette(%q)[%d].Color %q is not valid hex: %v", base, i, e.Color, err)
			}
		}
	}
}

func TestGeneratePalette_AchromaticStaysGrey(t *testing.T) {
	got, err := GeneratePalette("#808080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, e := range got {
		if e.Color != "#808080" {
			t.Errorf("entry %d: expected grey, got %q", i, e.Color)
		}
	}
}

func TestGeneratePalette_InvalidBase(t *testing.T) {
	_, err := GeneratePalette("red")
	if !errors.Is(err, domain.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
