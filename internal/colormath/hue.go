package colormath

import (
	"math"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// ShiftHue rotates the hue of rgb by degrees, which may be negative or exceed a full turn
// but must be finite.
func ShiftHue(rgb domain.RGB, degrees float64) (domain.RGB, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return domain.RGB{}, domain.InvalidFormat("colormath.shift_hue", "degrees must be finite, got %v", degrees)
	}
	hsl, err := RGBToHSL(rgb)
	if err != nil {
		return domain.RGB{}, err
	}
	hsl.H = wrapDegrees(hsl.H + degrees)
	return HSLToRGB(hsl), nil
}

// wrapDegrees reduces v into [0,360). math.Mod keeps the dividend's sign, hence the second pass.
func wrapDegrees(v float64) float64 {
	return math.Mod(math.Mod(v, 360)+360, 360)
}
