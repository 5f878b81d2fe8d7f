package render

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// Page is the view model of the palette web page.
type Page struct {
	Lang    string
	Base    domain.HexColor
	Error   string
	Entries []entryView
}

// HTML renders the colour picker page with one card per palette entry.
type HTML struct {
	w      io.Writer
	locale domain.Locale
}

func NewHTML(w io.Writer, locale domain.Locale) *HTML {
	return &HTML{w: w, locale: locale}
}

var _ ports.PaletteRenderer = (*HTML)(nil)

func (h *HTML) Render(_ context.Context, p domain.Palette) error {
	return h.RenderPage(Page{
		Base:    p.Base,
		Entries: entryViews(p, h.locale),
	})
}

// RenderPage writes an arbitrary page, e.g. the form with an error and no cards.
func (h *HTML) RenderPage(page Page) error {
	if page.Lang == "" {
		page.Lang = string(h.locale)
	}
	return pageTmpl.Execute(h.w, page)
}
