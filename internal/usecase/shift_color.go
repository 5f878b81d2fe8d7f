package usecase

import (
	"context"

	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
)

// ShiftColor rotates the hue of a colour by a number of degrees.
type ShiftColor struct{}

func NewShiftColor() *ShiftColor {
	return &ShiftColor{}
}

func (uc *ShiftColor) Execute(ctx context.Context, input string, degrees float64) (domain.ColorInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.ColorInfo{}, err
	}

	rgb, err := colormath.ParseColor(input)
	if err != nil {
		return domain.ColorInfo{}, err
	}

	shifted, err := colormath.ShiftHue(rgb, degrees)
	if err != nil {
		return domain.ColorInfo{}, err
	}
	return colormath.Describe(shifted)
}
