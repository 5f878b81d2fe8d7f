package ports

import (
	"context"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// ColorDescriber turns a user supplied colour into its hex, rgb and hsl forms.
type ColorDescriber interface {
	Execute(ctx context.Context, input string) (domain.ColorInfo, error)
}
