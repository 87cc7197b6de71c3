// Package config loads the application configuration and the JSON inputs:
// the kitchen catalog and the order batch.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Kitchen struct {
		// Name selects which kitchen of the catalog to run.
		Name string `yaml:"name"`
		// MaxConcurrentItems caps items cooking at once; 0 means unconstrained.
		MaxConcurrentItems int `yaml:"max_concurrent_items"`
		// CatalogPath points at the kitchens JSON file.
		CatalogPath string `yaml:"catalog_path"`
	} `yaml:"kitchen"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{LogLevel: "info"}
	cfg.Kitchen.CatalogPath = "configs/kitchens.json"
	cfg.Metrics.Port = 9090
	return cfg
}

// Load reads a yaml config file, filling unset fields with defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Kitchen.CatalogPath == "" {
		cfg.Kitchen.CatalogPath = "configs/kitchens.json"
	}
	return cfg, nil
}
