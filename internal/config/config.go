// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Bank   string `json:"bank,omitempty"`   // Path to a question bank YAML file or directory
	Schema string `json:"schema,omitempty"` // Path to the question bank JSON Schema

	// Evaluation defaults
	Category   string `json:"category,omitempty"`   // Default question category for ad-hoc evaluation
	Difficulty string `json:"difficulty,omitempty"` // Default difficulty for imported/generated drafts

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for question drafting
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for script-rendered import pages
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed evaluation reports
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig reads a JSON config file. The path may be relative to the
// working directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

// Validate rejects values no command could accept. Required fields are not
// checked here; flag handling decides what is required after merging.
func (c *Config) Validate() error {
	switch c.Category {
	case "", "technical", "behavioral", "system_design":
	default:
		return fmt.Errorf("config error: unknown category %q", c.Category)
	}

	switch c.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("config error: unknown difficulty %q", c.Difficulty)
	}

	if c.Bank != "" {
		if _, err := os.Stat(c.Bank); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config error: bank path not found: %s", c.Bank)
		}
	}

	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	return nil
}

// MergeWithDefaults fills empty string fields from defaults and returns the
// result. Bool fields are left alone; an unset flag and false cannot be told
// apart, so CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	orDefault := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}

	result := *c
	result.Bank = orDefault(result.Bank, defaults.Bank)
	result.Schema = orDefault(result.Schema, defaults.Schema)
	result.Category = orDefault(result.Category, defaults.Category)
	result.Difficulty = orDefault(result.Difficulty, defaults.Difficulty)
	result.APIKey = orDefault(result.APIKey, defaults.APIKey)
	result.DatabaseURL = orDefault(result.DatabaseURL, defaults.DatabaseURL)
	return result
}
