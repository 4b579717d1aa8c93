package main

import (
	"fmt"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/config"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/extract"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/scoring"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/textnorm"
)

// loadRankerConfig loads the optional JSON config file and validates it.
// An empty path yields the defaults.
func loadRankerConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildEngine performs the one-time bootstrap: normalization pipeline
// (including the lemmatizer dictionary load), skill catalog, and scoring
// engine. Configuration errors surface here, before any candidate is read.
func buildEngine(cfg config.Config) (*scoring.Engine, error) {
	pipeline := textnorm.New()
	catalog := extract.DefaultCatalog()

	engine, err := scoring.NewEngine(cfg, pipeline, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scoring engine: %w", err)
	}
	return engine, nil
}
