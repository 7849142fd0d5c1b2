// Package config holds the ragpipe configuration surface.
// Settings come from an optional ragpipe.yaml file and are overridden by
// CLI flags; validation happens once at startup, before any URL is processed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigError reports an invalid configuration value. It is fatal at
// startup, never per-document.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid config: " + e.Reason
}

// Config holds all tunables consumed by the pipeline.
type Config struct {
	// ChunkSize is the target chunk size in characters.
	ChunkSize int `yaml:"chunk_size"`

	// ChunkOverlap is the number of characters shared between adjacent
	// chunks. Must satisfy 0 <= ChunkOverlap < ChunkSize.
	ChunkOverlap int `yaml:"chunk_overlap"`

	// IncludeLinks keeps markdown link syntax in the normalized output.
	// When false, links are reduced to their text before enrichment.
	IncludeLinks bool `yaml:"include_links"`

	// Concurrency bounds the worker pool in batch (--all) mode.
	Concurrency int `yaml:"concurrency"`

	// MaxPages limits discovery in batch mode.
	MaxPages int `yaml:"max_pages"`

	// OutputDir is where rendered files and the dataset are written.
	OutputDir string `yaml:"output_dir"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		ChunkSize:    1000,
		ChunkOverlap: 100,
		IncludeLinks: true,
		Concurrency:  4,
		MaxPages:     100,
	}
}

// Validate checks the configuration, returning a *ConfigError on the first
// violation.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("chunk_size must be positive, got %d", c.ChunkSize)}
	}
	if c.ChunkOverlap < 0 {
		return &ConfigError{Reason: fmt.Sprintf("chunk_overlap must not be negative, got %d", c.ChunkOverlap)}
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return &ConfigError{Reason: fmt.Sprintf("chunk_overlap (%d) must be less than chunk_size (%d)", c.ChunkOverlap, c.ChunkSize)}
	}
	if c.Concurrency <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("concurrency must be positive, got %d", c.Concurrency)}
	}
	if c.MaxPages <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("max_pages must be positive, got %d", c.MaxPages)}
	}
	return nil
}

// LoadFromFile reads a yaml config file over the defaults.
// A missing file is reported via os.IsNotExist on the returned error.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
