package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/infra/config"
	"github.com/eni-rainstop/colorselect/internal/infra/logger"
)

type projectCtx struct {
	root string
	cfg  domain.Config
}

// loadProject resolves the project from pathFlag, or from the working directory
// when empty. A directory without colorselect.yaml yields the defaults.
func loadProject(pathFlag string) (*projectCtx, error) {
	start, err := resolveStartDir(pathFlag)
	if err != nil {
		return nil, err
	}

	root, cfg, err := config.Resolve(start)
	if err != nil {
		return nil, err
	}
	return &projectCtx{root: root, cfg: cfg}, nil
}

func resolveStartDir(pathFlag string) (string, error) {
	p := strings.TrimSpace(pathFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

// startLogging opens the project log. Logging failures never stop a command.
func startLogging(root string, debug bool, mirror io.Writer) func() {
	cleanup, err := logger.Setup(logger.Config{
		Root:   root,
		Debug:  debug,
		Mirror: mirror,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func resolveLocale(flag string, cfg domain.Config) (domain.Locale, error) {
	if strings.TrimSpace(flag) == "" {
		return cfg.Labels.Locale, nil
	}
	loc := domain.Locale(strings.TrimSpace(flag))
	if !domain.ValidLocale(loc) {
		return "", fmt.Errorf("unsupported locale %q (expected en|zh-TW)", flag)
	}
	return loc, nil
}
