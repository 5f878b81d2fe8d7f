package render

import (
	"context"
	"encoding/json"
	"io"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

// JSON writes the palette as an indented document with localized names.
type JSON struct {
	w      io.Writer
	locale domain.Locale
}

func NewJSON(w io.Writer, locale domain.Locale) *JSON {
	return &JSON{w: w, locale: locale}
}

var _ ports.PaletteRenderer = (*JSON)(nil)

type jsonPalette struct {
	Base    domain.HexColor `json:"base"`
	Entries []entryView     `json:"entries"`
}

func (j *JSON) Render(_ context.Context, p domain.Palette) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonPalette{Base: p.Base, Entries: entryViews(p, j.locale)})
}
