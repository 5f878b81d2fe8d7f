package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

// Finder locates a project root by searching for colorselect.yaml upward.
type Finder struct {
	ConfigFile string // defaults to FileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ProjectLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path searches from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Resolve finds the project root from startDir and loads its config. When no project
// exists, root is startDir and cfg holds the defaults; only malformed files are errors.
func Resolve(startDir string) (root string, cfg domain.Config, err error) {
	return ResolveWith(NewFinder(), startDir)
}

// ResolveWith is Resolve with a custom locator.
func ResolveWith(loc ports.ProjectLocator, startDir string) (root string, cfg domain.Config, err error) {
	root, err = loc.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			abs, absErr := filepath.Abs(startDir)
			if absErr != nil {
				abs = startDir
			}
			return abs, domain.DefaultConfig(), nil
		}
		return "", domain.DefaultConfig(), err
	}

	cfg, err = Load(root)
	return root, cfg, err
}
