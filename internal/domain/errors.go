package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrOutOfRange    = errors.New("out of range")
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidFormat ErrorKind = "invalid_format"
	KindOutOfRange    ErrorKind = "out_of_range"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on adapter packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidFormat builds an OpError of KindInvalidFormat that also matches ErrInvalidFormat.
func InvalidFormat(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidFormat,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidFormat),
	}
}

// OutOfRange builds an OpError of KindOutOfRange that also matches ErrOutOfRange.
func OutOfRange(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindOutOfRange,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange),
	}
}
