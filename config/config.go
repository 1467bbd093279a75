// Package config loads the scoring configuration from a YAML file,
// falling back to the engine defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/content-optimizer/backend/analyzer"
)

// Load reads the scoring config from path. A missing file is not an error;
// the engine defaults are returned. A present but invalid file is.
func Load(path string) (analyzer.Config, error) {
	cfg := analyzer.DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading scoring config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing scoring config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid scoring config %s: %w", path, err)
	}
	return cfg, nil
}
