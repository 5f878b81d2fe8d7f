package ports

import "context"

// BaseColorSource yields the currently selected base colour as typed by the user.
// The value is raw input; validation happens in the palette use case.
type BaseColorSource interface {
	BaseColor(ctx context.Context) (string, error)
}
