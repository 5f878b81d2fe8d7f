package api

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/eni-rainstop/colorselect/internal/api/response"
	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/infra/render"
)

type paletteQuery struct {
	Base string `query:"base" validate:"required,hexcolor"`
}

type convertQuery struct {
	Color string `query:"color" validate:"required,max=32"`
}

// PaletteResponse is the data payload of GET /api/v1/palette.
type PaletteResponse struct {
	Base    domain.HexColor `json:"base"`
	Entries []EntryResponse `json:"entries"`
}

type EntryResponse struct {
	Label domain.Harmony  `json:"label"`
	Name  string          `json:"name"`
	Color domain.HexColor `json:"color"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}` + "\n"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSpace(r.URL.Query().Get("base"))
	if base == "" {
		base = string(s.cfg.Defaults.Base)
	}

	var buf bytes.Buffer
	page := render.NewHTML(&buf, s.cfg.Labels.Locale)
	status := http.StatusOK

	pal, err := s.palettes.Generate(r.Context(), base)
	if err != nil {
		status = response.StatusFor(err)
		msg := "Invalid colour: " + base
		if status != http.StatusBadRequest {
			s.logger.Error("http.page_failed", "base", base, "error", err)
			msg = "Something went wrong, please try again."
		}
		err = page.RenderPage(render.Page{Base: s.cfg.Defaults.Base, Error: msg})
	} else {
		err = page.Render(r.Context(), pal)
	}
	if err != nil {
		s.logger.Error("http.page_render_failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	pal, ok := s.paletteFromQuery(w, r, "api.palette")
	if !ok {
		return
	}

	resp := PaletteResponse{Base: pal.Base, Entries: make([]EntryResponse, 0, len(pal.Entries))}
	for _, e := range pal.Entries {
		resp.Entries = append(resp.Entries, EntryResponse{
			Label: e.Label,
			Name:  e.Label.DisplayName(s.localeFor(r)),
			Color: e.Color,
		})
	}

	response.Success(w, resp, s.logger)
}

func (s *Server) handlePalettePNG(w http.ResponseWriter, r *http.Request) {
	pal, ok := s.paletteFromQuery(w, r, "api.palette_png")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.NewPNG(&buf, s.cfg.Render.SwatchSize).Render(r.Context(), pal); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := convertQuery{Color: strings.TrimSpace(r.URL.Query().Get("color"))}
	if err := s.validate.Validate("api.convert", q); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	info, err := s.describer.Execute(r.Context(), q.Color)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, info, s.logger)
}

func (s *Server) paletteFromQuery(w http.ResponseWriter, r *http.Request, op string) (domain.Palette, bool) {
	q := paletteQuery{Base: strings.TrimSpace(r.URL.Query().Get("base"))}
	if err := s.validate.Validate(op, q); err != nil {
		response.HandleError(w, err, s.logger)
		return domain.Palette{}, false
	}

	pal, err := s.palettes.Generate(r.Context(), q.Base)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return domain.Palette{}, false
	}
	return pal, true
}

// localeFor lets ?locale= override the configured label language.
func (s *Server) localeFor(r *http.Request) domain.Locale {
	if loc := domain.Locale(r.URL.Query().Get("locale")); domain.ValidLocale(loc) {
		return loc
	}
	return s.cfg.Labels.Locale
}
