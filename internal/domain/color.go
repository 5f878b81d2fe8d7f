package domain

import "fmt"

// HexColor is "#" followed by six hex digits. Canonical form is lowercase.
type HexColor string

// RGB is an 8-bit-per-channel colour; each channel is expected in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// InRange reports whether every channel is within [0,255].
func (c RGB) InRange() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B)
}

func inByte(v int) bool { return v >= 0 && v <= 255 }

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S*100, c.L*100)
}

// ColorInfo is one colour in every supported representation.
type ColorInfo struct {
	Hex HexColor `json:"hex"`
	RGB RGB      `json:"rgb"`
	HSL HSL      `json:"hsl"`
}
