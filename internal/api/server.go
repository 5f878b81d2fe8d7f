// Package api provides the HTTP surface of colorselect: the palette page and a small JSON API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg       domain.Config
	palettes  ports.PaletteGenerator
	describer ports.ColorDescriber
	validate  *Validator
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg domain.Config, palettes ports.PaletteGenerator, describer ports.ColorDescriber, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		cfg:       cfg,
		palettes:  palettes,
		describer: describer,
		validate:  NewValidator(),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/", s.handlePage)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/palette", s.handlePalette)
		r.Get("/palette.png", s.handlePalettePNG)
		r.Get("/convert", s.handleConvert)
	})
}
