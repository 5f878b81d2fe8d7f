package colormath

import "github.com/eni-rainstop/colorselect/internal/domain"

// PaletteSize is the number of entries GeneratePalette always returns.
const PaletteSize = 5

type harmonyOffset struct {
	label   domain.Harmony
	degrees float64
}

var harmonyOffsets = [PaletteSize]harmonyOffset{
	{domain.HarmonyComplementary, 180},
	{domain.HarmonyComplementary, 195},
	{domain.HarmonyAnalogous, 30},
	{domain.HarmonyAnalogous, -30},
	{domain.HarmonyTriadic, 120},
}

// GeneratePalette derives the fixed five-entry harmony palette from base.
func GeneratePalette(base domain.HexColor) ([]domain.PaletteEntry, error) {
	rgb, err := HexToRGB(base)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PaletteEntry, 0, PaletteSize)
	for _, o := range harmonyOffsets {
		shifted, err := ShiftHue(rgb, o.degrees)
		if err != nil {
			return nil, err
		}
		hx, err := RGBToHex(shifted)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.PaletteEntry{Label: o.label, Color: hx})
	}
	return out, nil
}
