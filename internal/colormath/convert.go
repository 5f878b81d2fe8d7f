package colormath

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// HexToRGB decodes "#rrggbb" (case-insensitive).
func HexToRGB(h domain.HexColor) (domain.RGB, error) {
	s := string(h)
	if len(s) != 7 || s[0] != '#' {
		return domain.RGB{}, domain.InvalidFormat("colormath.hex_to_rgb", "want #rrggbb, got %q", s)
	}

	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return domain.RGB{}, domain.InvalidFormat("colormath.hex_to_rgb", "non-hex digit in %q", s)
	}
	return domain.RGB{R: int(b[0]), G: int(b[1]), B: int(b[2])}, nil
}

// RGBToHex encodes rgb as lowercase "#rrggbb". Channels outside [0,255] are rejected.
func RGBToHex(rgb domain.RGB) (domain.HexColor, error) {
	if err := checkRange("colormath.rgb_to_hex", rgb); err != nil {
		return "", err
	}
	return domain.HexColor(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)), nil
}

// RGBToHSL converts rgb to hue degrees and saturation/lightness fractions.
//
// When two channels tie for the maximum, the hue branch is picked by testing r, then g, then b.
func RGBToHSL(rgb domain.RGB) (domain.HSL, error) {
	if err := checkRange("colormath.rgb_to_hsl", rgb); err != nil {
		return domain.HSL{}, err
	}

	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return domain.HSL{H: 0, S: 0, L: l}, nil
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}

	return domain.HSL{H: h * 60, S: s, L: l}, nil
}

// HSLToRGB converts hsl back to 8-bit channels.
//
// S and L are clamped into [0,1]. H is not wrapped: values below 0 land in the first
// sector and values at or above 300 in the last, so callers keep H in [0,360).
func HSLToRGB(hsl domain.HSL) domain.RGB {
	h := hsl.H
	s := clamp01(hsl.S)
	l := clamp01(hsl.L)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	return domain.RGB{
		R: toByte(r1 + m),
		G: toByte(g1 + m),
		B: toByte(b1 + m),
	}
}

// Describe returns rgb in every representation.
func Describe(rgb domain.RGB) (domain.ColorInfo, error) {
	hx, err := RGBToHex(rgb)
	if err != nil {
		return domain.ColorInfo{}, err
	}
	hsl, err := RGBToHSL(rgb)
	if err != nil {
		return domain.ColorInfo{}, err
	}
	return domain.ColorInfo{Hex: hx, RGB: rgb, HSL: hsl}, nil
}

func checkRange(op string, rgb domain.RGB) error {
	if rgb.InRange() {
		return nil
	}
	return domain.OutOfRange(op, "channels must be within [0,255], got %s", rgb)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func toByte(v float64) int {
	return int(math.Round(v * 255))
}
