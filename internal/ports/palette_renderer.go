package ports

import (
	"context"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// PaletteRenderer presents a generated palette (terminal, JSON, image, HTML...).
type PaletteRenderer interface {
	Render(ctx context.Context, p domain.Palette) error
}
