// Package config provides configuration loading and validation for the resume ranker.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// weightSumTolerance is the allowed floating-point drift when checking that
// the score weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights holds the relative contribution of each sub-score to the overall
// score. The four weights must sum to 1.0.
type Weights struct {
	Keyword    float64 `json:"keyword"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	TFIDF      float64 `json:"tfidf"`
}

// DefaultWeights returns the standard weight table: keyword 30%, skills 25%,
// experience 20%, TF-IDF similarity 25%.
func DefaultWeights() Weights {
	return Weights{
		Keyword:    0.30,
		Skills:     0.25,
		Experience: 0.20,
		TFIDF:      0.25,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Keyword + w.Skills + w.Experience + w.TFIDF
}

// Validate checks that every weight is non-negative and that the table sums
// to 1.0. A bad weight table is a configuration error and must stop startup
// before any candidate is processed.
func (w Weights) Validate() error {
	if w.Keyword < 0 || w.Skills < 0 || w.Experience < 0 || w.TFIDF < 0 {
		return fmt.Errorf("config error: score weights must be non-negative, got %+v", w)
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("config error: score weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Config represents the ranker configuration that can be loaded from a JSON
// file. Missing values use defaults; CLI flags win over file values.
type Config struct {
	Weights *Weights `json:"weights,omitempty"` // Sub-score weight table

	// Extraction
	TopKeywords      int `json:"top_keywords,omitempty"`       // Keywords taken from each document
	MinKeywordLength int `json:"min_keyword_length,omitempty"` // Minimum keyword token length

	// Similarity
	MaxFeatures int `json:"max_features,omitempty"` // Vocabulary cap for the TF-IDF vectorizer

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed score breakdowns
}

// Default returns a Config populated with the standard values.
func Default() Config {
	w := DefaultWeights()
	return Config{
		Weights:          &w,
		TopKeywords:      20,
		MinKeywordLength: 4,
		MaxFeatures:      1000,
		Port:             8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. It fails fast so
// that a bad weight table never reaches the scoring engine.
func (c *Config) Validate() error {
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return err
		}
	}
	if c.TopKeywords < 0 {
		return fmt.Errorf("config error: 'top_keywords' must be non-negative")
	}
	if c.MinKeywordLength < 0 {
		return fmt.Errorf("config error: 'min_keyword_length' must be non-negative")
	}
	if c.MaxFeatures < 0 {
		return fmt.Errorf("config error: 'max_features' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// the defaults. Bool fields are not merged; CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.TopKeywords == 0 {
		result.TopKeywords = defaults.TopKeywords
	}
	if result.MinKeywordLength == 0 {
		result.MinKeywordLength = defaults.MinKeywordLength
	}
	if result.MaxFeatures == 0 {
		result.MaxFeatures = defaults.MaxFeatures
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}
