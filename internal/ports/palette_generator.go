package ports

import (
	"context"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// PaletteGenerator derives a palette from a raw base colour string.
type PaletteGenerator interface {
	Generate(ctx context.Context, base string) (domain.Palette, error)
}
