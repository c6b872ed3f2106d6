package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Profile != "baseline-3" {
		t.Errorf("Profile = %q, want baseline-3", cfg.Profile)
	}
	if cfg.SinkTimeout != 10*time.Second {
		t.Errorf("SinkTimeout = %s, want 10s", cfg.SinkTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Profile != "baseline-3" {
		t.Errorf("Profile = %q, want default", cfg.Profile)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `profile: extended-4
sink_url: https://example.com/sink
sink_timeout: 30s
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Profile != "extended-4" {
		t.Errorf("Profile = %q, want extended-4", cfg.Profile)
	}
	if cfg.SinkURL != "https://example.com/sink" {
		t.Errorf("SinkURL = %q", cfg.SinkURL)
	}
	if cfg.SinkTimeout != 30*time.Second {
		t.Errorf("SinkTimeout = %s, want 30s", cfg.SinkTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Unset keys keep their defaults.
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want default :8080", cfg.ListenAddr)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("profile: [broken"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() should fail for malformed YAML")
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := filepath.Join(dir, "dur.yaml")
		if err := os.WriteFile(path, []byte("sink_timeout: soon\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() should fail for an unparsable duration")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"extended profile ok", func(c *Config) { c.Profile = "extended-4" }, false},
		{"unknown profile", func(c *Config) { c.Profile = "five-tier" }, true},
		{"zero timeout", func(c *Config) { c.SinkTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
