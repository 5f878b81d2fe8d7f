package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

type GeneratePalette struct {
	log *slog.Logger
}

type GenerateOption func(*GeneratePalette)

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GeneratePalette) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewGeneratePalette(opts ...GenerateOption) *GeneratePalette {
	uc := &GeneratePalette{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ ports.PaletteGenerator = (*GeneratePalette)(nil)

// Generate validates base and derives its harmony palette.
func (uc *GeneratePalette) Generate(ctx context.Context, base string) (domain.Palette, error) {
	if err := ctx.Err(); err != nil {
		return domain.Palette{}, err
	}

	hx, err := colormath.NormalizeHex(base)
	if err != nil {
		uc.log.Warn("palette.invalid_base", "input", base, "err", err)
		return domain.Palette{}, err
	}

	entries, err := colormath.GeneratePalette(hx)
	if err != nil {
		return domain.Palette{}, err
	}

	uc.log.Debug("palette.generated", "base", string(hx), "entries", len(entries))
	return domain.Palette{Base: hx, Entries: entries}, nil
}

// Execute reads the base colour from src, generates the palette and hands it to r.
func (uc *GeneratePalette) Execute(ctx context.Context, src ports.BaseColorSource, r ports.PaletteRenderer) (domain.Palette, error) {
	raw, err := src.BaseColor(ctx)
	if err != nil {
		return domain.Palette{}, err
	}

	p, err := uc.Generate(ctx, strings.TrimSpace(raw))
	if err != nil {
		return domain.Palette{}, err
	}

	if err := r.Render(ctx, p); err != nil {
		uc.log.Error("palette.render_failed", "base", string(p.Base), "err", err)
		return p, err
	}
	return p, nil
}
