// Package config loads tool configuration from YAML files and provides
// defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration for the refract binaries.
type Config struct {
	// Log controls where and how the server logs.
	Log struct {
		// File is the log destination. Empty means stderr.
		File string `yaml:"file"`

		// Level is the minimum record level: debug, info, warn, or error.
		Level string `yaml:"level"`

		// JSON switches records to JSON lines instead of text.
		JSON bool `yaml:"json"`

		// MaxSizeMB is the rotation threshold when logging to a file.
		MaxSizeMB int `yaml:"maxSizeMB"`

		// MaxBackups is how many rotated files to keep.
		MaxBackups int `yaml:"maxBackups"`

		// MaxAgeDays is how long rotated files are retained.
		MaxAgeDays int `yaml:"maxAgeDays"`
	} `yaml:"log"`

	// Export holds defaults for writing export files from the CLI.
	Export struct {
		// Dir is the default output directory for exported patterns.
		Dir string `yaml:"dir"`
	} `yaml:"export"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.MaxSizeMB = 10
	cfg.Log.MaxBackups = 3
	cfg.Log.MaxAgeDays = 14
	cfg.Export.Dir = "."
	return cfg
}

// Load reads configuration from a YAML file, layered over the defaults. A
// missing file is not an error; it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}
