package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// Load reads colorselect.yaml from root and applies it on top of domain.DefaultConfig.
//
// A missing file yields the defaults together with a KindNotFound error, so callers that
// treat the file as optional can check domain.IsKind and carry on.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

// Parse decodes raw YAML; path is only used in error messages.
func Parse(path string, b []byte) (domain.Config, error) {
	var y yamlFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, y.ColorSelect)
}
