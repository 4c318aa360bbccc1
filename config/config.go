// Package config provides configuration loading for the iprload binary.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete loader configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Store    StoreConfig    `yaml:"store"`
	Progress ProgressConfig `yaml:"progress"`
}

// OntologyConfig configures the target ontology
type OntologyConfig struct {
	// Name is the ontology name (default: "interpro")
	Name string `yaml:"name"`
}

// StoreConfig configures the optional persistent snapshot
type StoreConfig struct {
	// Path is the BadgerDB directory; empty disables persistence
	Path string `yaml:"path"`
}

// ProgressConfig configures progress reporting
type ProgressConfig struct {
	// Every is the number of processed records between progress
	// notifications (default: 100)
	Every int `yaml:"every"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Ontology: OntologyConfig{Name: "interpro"},
		Progress: ProgressConfig{Every: 100},
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Ontology.Name == "" {
		cfg.Ontology.Name = "interpro"
	}
	if cfg.Progress.Every <= 0 {
		cfg.Progress.Every = 100
	}
	return cfg, nil
}
