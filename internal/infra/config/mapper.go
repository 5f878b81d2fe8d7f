package config

import (
	"fmt"
	"strings"

	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
)

// Map validates a decoded config section and applies it on top of the defaults.
func Map(path string, y yamlConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if base := strings.TrimSpace(y.Defaults.Base); base != "" {
		hx, err := colormath.NormalizeHex(base)
		if err != nil {
			return domain.DefaultConfig(), invalidField(path, "defaults.base", fmt.Sprintf("%q is not a #rrggbb colour", base))
		}
		cfg.Defaults.Base = hx
	}

	if f := strings.TrimSpace(y.Defaults.Format); f != "" {
		format, err := ParseFormat(f)
		if err != nil {
			return domain.DefaultConfig(), invalidField(path, "defaults.format", err.Error())
		}
		cfg.Defaults.Format = format
	}

	if loc := strings.TrimSpace(y.Labels.Locale); loc != "" {
		if !domain.ValidLocale(domain.Locale(loc)) {
			return domain.DefaultConfig(), invalidField(path, "labels.locale", fmt.Sprintf("unsupported locale %q", loc))
		}
		cfg.Labels.Locale = domain.Locale(loc)
	}

	if w := y.Render.SwatchWidth; w != nil {
		if *w <= 0 {
			return domain.DefaultConfig(), invalidField(path, "render.swatch_width", "must be positive")
		}
		cfg.Render.SwatchWidth = *w
	}
	if s := y.Render.SwatchSize; s != nil {
		if *s < 16 {
			return domain.DefaultConfig(), invalidField(path, "render.swatch_size", "must be at least 16")
		}
		cfg.Render.SwatchSize = *s
	}

	if addr := strings.TrimSpace(y.Server.Addr); addr != "" {
		cfg.Server.Addr = addr
	}
	if len(y.Server.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), y.Server.AllowedOrigins...)
	}

	return cfg, nil
}

// ParseFormat maps a user-supplied format name onto an OutputFormat.
func ParseFormat(s string) (domain.OutputFormat, error) {
	switch f := domain.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case domain.FormatText, domain.FormatJSON, domain.FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected text|json|png)", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
