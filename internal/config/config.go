// Package config loads the optional buildmole configuration file.
//
// The file lives at $XDG_CONFIG_HOME/buildmole/config.yaml (falling back to
// ~/.config). Every field is optional; flags override file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models config.yaml.
type Config struct {
	// Include and Exclude are glob patterns applied to every scan, merged
	// with (before) any patterns given on the command line.
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// Workers sets the shared pool size. Zero means the CPU count.
	Workers int `yaml:"workers,omitempty"`

	// NoColor disables styled output even on a TTY.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Path returns the config file location for this platform.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "buildmole", "config.yaml"), nil
}

// Load reads the config file. A missing file yields the zero config with no
// error; a malformed file is an error so a typo never silently reverts the
// user to defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
