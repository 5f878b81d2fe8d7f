package usecase

import (
	"context"

	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
)

// DescribeColor parses a colour in any accepted notation and reports all representations.
type DescribeColor struct{}

func NewDescribeColor() *DescribeColor {
	return &DescribeColor{}
}

func (uc *DescribeColor) Execute(ctx context.Context, input string) (domain.ColorInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.ColorInfo{}, err
	}

	rgb, err := colormath.ParseColor(input)
	if err != nil {
		return domain.ColorInfo{}, err
	}
	return colormath.Describe(rgb)
}
