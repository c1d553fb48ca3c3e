// Package config reads and writes the editor preferences file,
// ~/.gridpad/config.yaml. Preferences only shape the editor (dataset
// location, defaults for new pages); they never enter a profile document.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/skyfreq/gridpad/internal/paths"
)

// Config represents ~/.gridpad/config.yaml.
type Config struct {
	StationsFile  string `yaml:"stations_file,omitempty"`
	DefaultRows   int    `yaml:"default_rows,omitempty"`
	ConfirmOnQuit bool   `yaml:"confirm_on_quit"`
}

// Default returns the preferences used when no config file exists.
func Default() Config {
	return Config{
		StationsFile:  paths.StationsFile(),
		DefaultRows:   4,
		ConfirmOnQuit: true,
	}
}

// Parse parses config.yaml bytes, filling unset fields with defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.StationsFile == "" {
		cfg.StationsFile = paths.StationsFile()
	}
	if cfg.DefaultRows < 1 {
		cfg.DefaultRows = 4
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Read loads the preferences file, returning defaults when it is absent.
func Read() (Config, error) {
	data, err := os.ReadFile(paths.ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}
