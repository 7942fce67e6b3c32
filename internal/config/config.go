// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"bidcheck/internal/classifier"
	"bidcheck/internal/ocr"
	"bidcheck/internal/paths"
	"bidcheck/internal/scorer"
	"bidcheck/internal/validation"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
		Quiet   bool   `yaml:"quiet"`
		Workers int    `yaml:"workers"`
	} `yaml:"defaults"`

	// Scoring thresholds for classification
	Scoring struct {
		MinClassifyScore   int `yaml:"min_classify_score"`
		AmbiguityGap       int `yaml:"ambiguity_gap"`
		ContextKeywordHits int `yaml:"context_keyword_hits"`
	} `yaml:"scoring"`

	// Text extraction limits
	Extraction struct {
		MaxPages           int `yaml:"max_pages"`
		FileTimeoutSeconds int `yaml:"file_timeout_seconds"`
	} `yaml:"extraction"`

	// Profiles for different validation scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a validation profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	Quiet       bool   `yaml:"quiet"`
	Workers     int    `yaml:"workers"`
	Description string `yaml:"description"`

	Scoring struct {
		MinClassifyScore   int `yaml:"min_classify_score"`
		AmbiguityGap       int `yaml:"ambiguity_gap"`
		ContextKeywordHits int `yaml:"context_keyword_hits"`
	} `yaml:"scoring"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Workers = validation.DefaultWorkers
	config.Scoring.MinClassifyScore = classifier.DefaultMinScore
	config.Scoring.AmbiguityGap = classifier.DefaultAmbiguityGap
	config.Scoring.ContextKeywordHits = scorer.DefaultContextHits
	config.Extraction.MaxPages = ocr.DefaultMaxPages
	config.Extraction.FileTimeoutSeconds = int(validation.DefaultFileTimeout.Seconds())

	// Add default strict profile for final tender submission rounds
	strict := Profile{
		Format:      "json",
		NoColor:     true,
		Workers:     validation.DefaultWorkers,
		Description: "Strict thresholds for final submission rounds",
	}
	strict.Scoring.MinClassifyScore = 70
	strict.Scoring.AmbiguityGap = classifier.DefaultAmbiguityGap
	strict.Scoring.ContextKeywordHits = scorer.DefaultContextHits
	config.Profiles["strict"] = strict

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	if err := paths.ValidatePath(configPath); err != nil {
		return nil, fmt.Errorf("invalid config file path: %w", err)
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// YAML unmarshaling zeroes numeric fields that are absent from the
	// file. Restore defaults for anything not explicitly set.
	if !containsField(data, "defaults", "workers") {
		config.Defaults.Workers = validation.DefaultWorkers
	}
	if !containsField(data, "scoring", "min_classify_score") {
		config.Scoring.MinClassifyScore = classifier.DefaultMinScore
	}
	if !containsField(data, "scoring", "ambiguity_gap") {
		config.Scoring.AmbiguityGap = classifier.DefaultAmbiguityGap
	}
	if !containsField(data, "scoring", "context_keyword_hits") {
		config.Scoring.ContextKeywordHits = scorer.DefaultContextHits
	}
	if !containsField(data, "extraction", "max_pages") {
		config.Extraction.MaxPages = ocr.DefaultMaxPages
	}
	if !containsField(data, "extraction", "file_timeout_seconds") {
		config.Extraction.FileTimeoutSeconds = int(validation.DefaultFileTimeout.Seconds())
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig rejects threshold values a validation run cannot use.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if config.Scoring.MinClassifyScore < 0 || config.Scoring.MinClassifyScore > 100 {
		return fmt.Errorf("min_classify_score must be between 0 and 100, got %d", config.Scoring.MinClassifyScore)
	}
	if config.Scoring.AmbiguityGap < 0 {
		return fmt.Errorf("ambiguity_gap must not be negative, got %d", config.Scoring.AmbiguityGap)
	}
	if config.Scoring.ContextKeywordHits < 1 {
		return fmt.Errorf("context_keyword_hits must be at least 1, got %d", config.Scoring.ContextKeywordHits)
	}
	if config.Extraction.MaxPages < 1 {
		return fmt.Errorf("max_pages must be at least 1, got %d", config.Extraction.MaxPages)
	}
	if config.Extraction.FileTimeoutSeconds < 1 {
		return fmt.Errorf("file_timeout_seconds must be at least 1, got %d", config.Extraction.FileTimeoutSeconds)
	}
	for name, profile := range config.Profiles {
		if profile.Scoring.MinClassifyScore < 0 || profile.Scoring.MinClassifyScore > 100 {
			return fmt.Errorf("profile '%s': min_classify_score must be between 0 and 100", name)
		}
	}
	return nil
}

// ApplyProfile overlays a profile's settings onto the top-level defaults.
// Zero-valued numeric profile fields leave the defaults untouched.
func (c *Config) ApplyProfile(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' not found", name)
	}

	if profile.Format != "" {
		c.Defaults.Format = profile.Format
	}
	c.Defaults.Verbose = profile.Verbose
	c.Defaults.Debug = profile.Debug
	c.Defaults.NoColor = profile.NoColor
	c.Defaults.Quiet = profile.Quiet
	if profile.Workers > 0 {
		c.Defaults.Workers = profile.Workers
	}
	if profile.Scoring.MinClassifyScore > 0 {
		c.Scoring.MinClassifyScore = profile.Scoring.MinClassifyScore
	}
	if profile.Scoring.AmbiguityGap > 0 {
		c.Scoring.AmbiguityGap = profile.Scoring.AmbiguityGap
	}
	if profile.Scoring.ContextKeywordHits > 0 {
		c.Scoring.ContextKeywordHits = profile.Scoring.ContextKeywordHits
	}
	return nil
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	for _, candidate := range []string{
		"config.yaml",
		"bidcheck.yaml",
		"bidcheck.yml",
		".bidcheck.yaml",
		".bidcheck.yml",
	} {
		if fileExists(candidate) {
			return candidate
		}
	}

	standardConfig := paths.GetConfigFile()
	if fileExists(standardConfig) {
		return standardConfig
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}
