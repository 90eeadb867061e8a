package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = ".logfire-setup.yaml"

// Config holds per-project defaults for the setup flow. All fields are
// optional; a missing file behaves like the zero value.
type Config struct {
	// SkipAuth and SkipMcp set the default for the corresponding CLI flags.
	SkipAuth bool `yaml:"skip_auth"`
	SkipMcp  bool `yaml:"skip_mcp"`

	// ExtraPatterns maps an integration extra to additional package names
	// that should pre-select it, e.g. an internal fork of a client library.
	ExtraPatterns map[string][]string `yaml:"extra_patterns"`
}

// Load reads the project configuration. Absence is not an error; a malformed
// file is, so the caller can report it and continue with defaults.
func Load(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
