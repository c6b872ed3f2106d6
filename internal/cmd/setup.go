package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/config"
	"github.com/imoreno/wellscreen/internal/logger"
	"github.com/imoreno/wellscreen/internal/scoring"
	"github.com/imoreno/wellscreen/internal/sink"
)

// addEngineFlags registers the flags shared by run and serve.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: .wellscreen/config.yaml)")
	cmd.Flags().String("profile", "", "Scoring profile: baseline-3 or extended-4")
	cmd.Flags().String("catalog", "", "Path to a YAML catalog file (default: built-in battery)")
	cmd.Flags().String("sink-url", "", "Results sink endpoint URL (empty disables submission)")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
}

// engine bundles everything a command needs to drive the questionnaire.
type engine struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	profile   *scoring.Profile
	log       *logger.ConsoleLogger
	submitter sink.Submitter
}

// buildEngine loads configuration (file first, CLI flags override), the
// catalog, and the scoring profile, and wires the results sink. Profile
// warnings are logged, not fatal: threshold data is configuration owned by
// the catalog owner.
func buildEngine(cmd *cobra.Command) (*engine, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// CLI flags override configuration file settings.
	if v, _ := cmd.Flags().GetString("profile"); v != "" {
		cfg.Profile = v
	}
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if v, _ := cmd.Flags().GetString("sink-url"); v != "" {
		cfg.SinkURL = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	profile, err := scoring.ProfileByName(cfg.Profile)
	if err != nil {
		return nil, err
	}
	warnings, err := profile.Validate()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warnf("%s", w)
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
	} else if cfg.Profile == "extended-4" {
		cat = catalog.DefaultExtended()
	} else {
		cat = catalog.Default()
	}

	var submitter sink.Submitter = sink.NopSubmitter{}
	if cfg.SinkURL != "" {
		client := &http.Client{Timeout: cfg.SinkTimeout}
		submitter = sink.NewFormSubmitter(cfg.SinkURL, client, log)
	} else {
		log.Debugf("no sink URL configured; result submission disabled")
	}

	return &engine{
		cfg:       cfg,
		catalog:   cat,
		profile:   profile,
		log:       log,
		submitter: submitter,
	}, nil
}
