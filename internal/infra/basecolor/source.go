// Package basecolor provides ports.BaseColorSource implementations.
package basecolor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

// Static always yields the same value (a CLI argument, a query parameter, a text field).
type Static string

func (s Static) BaseColor(_ context.Context) (string, error) {
	return string(s), nil
}

// Reader yields the first non-blank line of r.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (s *Reader) BaseColor(ctx context.Context) (string, error) {
	sc := bufio.NewScanner(s.r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", &domain.OpError{Op: "basecolor.reader", Kind: domain.KindExecution, Err: err}
	}
	return "", &domain.OpError{
		Op:   "basecolor.reader",
		Kind: domain.KindNotFound,
		Err:  errors.New("no colour on input"),
	}
}

// Fallback asks each source in order and returns the first non-blank value.
type Fallback []ports.BaseColorSource

func (f Fallback) BaseColor(ctx context.Context) (string, error) {
	for _, src := range f {
		if src == nil {
			continue
		}
		v, err := src.BaseColor(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(v) != "" {
			return v, nil
		}
	}
	return "", &domain.OpError{
		Op:   "basecolor.fallback",
		Kind: domain.KindNotFound,
		Err:  domain.ErrNotFound,
	}
}

var (
	_ ports.BaseColorSource = Static("")
	_ ports.BaseColorSource = (*Reader)(nil)
	_ ports.BaseColorSource = Fallback(nil)
)
