// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds bauh configuration
type Config struct {
	Gems        []string          `yaml:"gems"` // Enabled gems, empty enables all registered
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Disk        DiskConfig        `yaml:"disk"`
	Backup      BackupConfig      `yaml:"backup"`
	Enrich      EnrichConfig      `yaml:"enrich"`
	LogLevel    int               `yaml:"log_level"` // 0 warn, 1 info, 2 debug, 3 trace
}

type SuggestionsConfig struct {
	Enabled bool `yaml:"enabled"`
	ByType  int  `yaml:"by_type"` // Max suggestions per gem, 0 means unlimited
}

type DiskConfig struct {
	Cache DiskCacheConfig `yaml:"cache"`
}

type DiskCacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

type BackupConfig struct {
	Enabled bool `yaml:"enabled"` // Run the backup hook before actions that ask for it
}

type EnrichConfig struct {
	Workers int `yaml:"workers"` // Concurrent detail fetches
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Gems: []string{},
		Suggestions: SuggestionsConfig{
			Enabled: true,
			ByType:  10,
		},
		Disk: DiskConfig{
			Cache: DiskCacheConfig{Enabled: true},
		},
		Backup: BackupConfig{Enabled: true},
		Enrich: EnrichConfig{Workers: 4},
	}
}

// Load loads configuration from file. A missing file yields the defaults,
// and keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to file
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Suggestions.ByType < 0 {
		return fmt.Errorf("invalid config: suggestions.by_type must not be negative (got %d)", c.Suggestions.ByType)
	}
	if c.Enrich.Workers < 1 {
		return fmt.Errorf("invalid config: enrich.workers must be at least 1 (got %d)", c.Enrich.Workers)
	}
	if c.LogLevel < 0 {
		return fmt.Errorf("invalid config: log_level must not be negative (got %d)", c.LogLevel)
	}
	return nil
}

// GemEnabled reports if gem is enabled by this configuration
func (c *Config) GemEnabled(gem string) bool {
	if len(c.Gems) == 0 {
		return true
	}
	for _, g := range c.Gems {
		if g == gem {
			return true
		}
	}
	return false
}
