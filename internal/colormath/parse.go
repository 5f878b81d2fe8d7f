package colormath

import (
	"strconv"
	"strings"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// ParseColor accepts "#rrggbb", "r,g,b" or "rgb(r, g, b)". Surrounding whitespace is ignored.
func ParseColor(s string) (domain.RGB, error) {
	in := strings.TrimSpace(s)
	if strings.HasPrefix(in, "#") {
		return HexToRGB(domain.HexColor(in))
	}

	body := in
	if lower := strings.ToLower(in); strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		body = in[len("rgb(") : len(in)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return domain.RGB{}, domain.InvalidFormat("colormath.parse_color", "want #rrggbb or r,g,b, got %q", s)
	}

	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return domain.RGB{}, domain.InvalidFormat("colormath.parse_color", "channel %d of %q is not an integer", i, s)
		}
		ch[i] = v
	}

	rgb := domain.RGB{R: ch[0], G: ch[1], B: ch[2]}
	if err := checkRange("colormath.parse_color", rgb); err != nil {
		return domain.RGB{}, err
	}
	return rgb, nil
}

// NormalizeHex parses s as "#rrggbb" and returns its canonical lowercase form.
func NormalizeHex(s string) (domain.HexColor, error) {
	rgb, err := HexToRGB(domain.HexColor(strings.TrimSpace(s)))
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb)
}
