package colormath

import (
	"errors"
	"testing"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want domain.RGB
	}{
		{"#ff0000", domain.RGB{R: 255}},
		{"  #00FF00\n", domain.RGB{G: 255}},
		{"1,2,3", domain.RGB{R: 1, G: 2, B: 3}},
		{"rgb(52, 152, 219)", domain.RGB{R: 52, G: 152, B: 219}},
		{"RGB(0,0,255)", domain.RGB{B: 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColor_Errors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", domain.ErrInvalidFormat},
		{"red", domain.ErrInvalidFormat},
		{"#12", domain.ErrInvalidFormat},
		{"1,2", domain.ErrInvalidFormat},
		{"1,x,3", domain.ErrInvalidFormat},
		{"rgb(1,2,3,4)", domain.ErrInvalidFormat},
		{"256,0,0", domain.ErrOutOfRange},
		{"rgb(0,-1,0)", domain.ErrOutOfRange},
	}
	for _, c := range cases {
		_, err := ParseColor(c.in)
		if !errors.Is(err, c.want) {
			t.Errorf("ParseColor(%q) error = %v, want %v", c.in, err, c.want)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex(" #ABCDEF ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#abcdef" {
		t.Fatalf("expected lowercase hex, got %q", got)
	}
	if _, err := NormalizeHex("abcdef"); err == nil {
		t.Fatalf("expected error without #")
	}
}
