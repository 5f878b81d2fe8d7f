package tui

import (
	"log/slog"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

type Deps struct {
	Palettes ports.PaletteGenerator

	Base        domain.HexColor
	Locale      domain.Locale
	SwatchWidth int

	Logger *slog.Logger
	Debug  bool
}
