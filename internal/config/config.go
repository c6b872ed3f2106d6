// Package config loads wellscreen configuration from an optional YAML
// file, merged over built-in defaults. Configuration is loaded once at
// startup and treated as read-only afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where LoadConfig looks when no path is given.
const DefaultConfigPath = ".wellscreen/config.yaml"

// Config represents wellscreen configuration options
type Config struct {
	// Profile selects the scoring profile: "baseline-3" or "extended-4"
	Profile string `yaml:"profile"`

	// CatalogPath points to a YAML catalog file; empty uses the built-in
	// battery matching the profile
	CatalogPath string `yaml:"catalog_path"`

	// SinkURL is the results sink endpoint; empty disables submission
	SinkURL string `yaml:"sink_url"`

	// SinkTimeout bounds the single submission attempt
	SinkTimeout time.Duration `yaml:"sink_timeout"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ListenAddr is the bind address for serve mode
	ListenAddr string `yaml:"listen_addr"`

	// UserAgent identifies the submitting client to the sink
	UserAgent string `yaml:"user_agent"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Profile:     "baseline-3",
		CatalogPath: "",
		SinkURL:     "",
		SinkTimeout: 10 * time.Second,
		LogLevel:    "info",
		ListenAddr:  ":8080",
		UserAgent:   "wellscreen",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Temporary struct so durations can be written as "10s"-style strings
	type yamlConfig struct {
		Profile     string `yaml:"profile"`
		CatalogPath string `yaml:"catalog_path"`
		SinkURL     string `yaml:"sink_url"`
		SinkTimeout string `yaml:"sink_timeout"`
		LogLevel    string `yaml:"log_level"`
		ListenAddr  string `yaml:"listen_addr"`
		UserAgent   string `yaml:"user_agent"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.Profile != "" {
		cfg.Profile = yamlCfg.Profile
	}
	if yamlCfg.CatalogPath != "" {
		cfg.CatalogPath = yamlCfg.CatalogPath
	}
	if yamlCfg.SinkURL != "" {
		cfg.SinkURL = yamlCfg.SinkURL
	}
	if yamlCfg.SinkTimeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.SinkTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid sink_timeout format %q: %w", yamlCfg.SinkTimeout, err)
		}
		cfg.SinkTimeout = timeout
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.ListenAddr != "" {
		cfg.ListenAddr = yamlCfg.ListenAddr
	}
	if yamlCfg.UserAgent != "" {
		cfg.UserAgent = yamlCfg.UserAgent
	}

	return cfg, nil
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	switch c.Profile {
	case "baseline-3", "extended-4":
	default:
		return fmt.Errorf("unknown profile %q", c.Profile)
	}
	if c.SinkTimeout <= 0 {
		return fmt.Errorf("sink_timeout must be positive, got %s", c.SinkTimeout)
	}
	return nil
}
