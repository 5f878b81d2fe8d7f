// Package render turns palettes into terminal text, JSON, PNG images and HTML pages.
package render

import (
	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
)

const (
	black domain.HexColor = "#000000"
	white domain.HexColor = "#ffffff"
)

// Foreground picks black or white text for legibility on bg. Invalid input gets white.
func Foreground(bg domain.HexColor) domain.HexColor {
	rgb, err := colormath.HexToRGB(bg)
	if err != nil {
		return white
	}
	hsl, err := colormath.RGBToHSL(rgb)
	if err != nil {
		return white
	}
	if hsl.L > 0.6 {
		return black
	}
	return white
}

type entryView struct {
	Label string          `json:"label"`
	Name  string          `json:"name"`
	Color domain.HexColor `json:"color"`
	Text  domain.HexColor `json:"-"`
}

func entryViews(p domain.Palette, loc domain.Locale) []entryView {
	out := make([]entryView, 0, len(p.Entries))
	for _, e := range p.Entries {
		out = append(out, entryView{
			Label: string(e.Label),
			Name:  e.Label.DisplayName(loc),
			Color: e.Color,
			Text:  Foreground(e.Color),
		})
	}
	return out
}
