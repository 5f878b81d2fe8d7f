package render

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

// Text prints one coloured swatch per line, followed by the harmony name.
type Text struct {
	w      io.Writer
	r      *lipgloss.Renderer
	locale domain.Locale
	width  int
}

func NewText(w io.Writer, locale domain.Locale, width int) *Text {
	if width <= 0 {
		width = domain.DefaultConfig().Render.SwatchWidth
	}
	return &Text{
		w:      w,
		r:      lipgloss.NewRenderer(w),
		locale: locale,
		width:  width,
	}
}

var _ ports.PaletteRenderer = (*Text)(nil)

func (t *Text) Render(_ context.Context, p domain.Palette) error {
	label := t.r.NewStyle().Bold(true)
	faint := t.r.NewStyle().Faint(true)

	if _, err := fmt.Fprintf(t.w, "%s %s\n\n", label.Render("Base"), t.Swatch(p.Base)); err != nil {
		return err
	}
	for _, e := range entryViews(p, t.locale) {
		if _, err := fmt.Fprintf(t.w, "%s  %s %s\n", t.Swatch(e.Color), e.Name, faint.Render("("+e.Label+")")); err != nil {
			return err
		}
	}
	return nil
}

// Swatch renders hex as a filled block with the code printed inside.
func (t *Text) Swatch(hex domain.HexColor) string {
	return t.r.NewStyle().
		Background(lipgloss.Color(string(hex))).
		Foreground(lipgloss.Color(string(Foreground(hex)))).
		Width(t.width).
		Align(lipgloss.Center).
		Render(string(hex))
}
