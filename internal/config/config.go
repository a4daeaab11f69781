// Package config provides configuration management for the candidate tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatInfobox = "infobox"
	FormatJSON    = "json"
)

// Configuration validation errors.
var (
	ErrInvalidOffice            = errors.New("extractor.office must be 'house' or 'senate'")
	ErrInvalidTableSelector     = errors.New("extractor.table_selector is not a valid CSS selector")
	ErrInvalidReferenceSelector = errors.New("extractor.reference_selector is not a valid CSS selector")
	ErrInvalidOutputFormat      = errors.New("output.format must be 'infobox' or 'json'")
	ErrMissingTemplate          = errors.New("output.template is required for infobox output")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete configuration.
type Config struct {
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Output     OutputConfig     `yaml:"output"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ExtractorConfig selects the tables and footnotes read from a page.
type ExtractorConfig struct {
	Office            string `yaml:"office"`
	TableSelector     string `yaml:"table_selector"`
	ReferenceSelector string `yaml:"reference_selector"`
}

// OutputConfig defines output behavior. An empty Path means stdout.
type OutputConfig struct {
	Format    string `yaml:"format"`
	Path      string `yaml:"path"`
	Template  string `yaml:"template"`
	AlignKeys bool   `yaml:"align_keys"`
	Sign      bool   `yaml:"sign"`
}

// NormalizerConfig controls how build failures are handled.
type NormalizerConfig struct {
	ContinueOnValidationErrors bool `yaml:"continue_on_validation_errors"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Extractor: ExtractorConfig{
			Office:            "house",
			TableSelector:     "table.wikitable",
			ReferenceSelector: "ol.references li[id]",
		},
		Output: OutputConfig{
			Format:   FormatInfobox,
			Template: "Infobox Officeholder",
		},
		Normalizer: NormalizerConfig{
			ContinueOnValidationErrors: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Extractor.Office != "house" && c.Extractor.Office != "senate" {
		return fmt.Errorf("%w: got %q", ErrInvalidOffice, c.Extractor.Office)
	}

	// empty selectors fall back to the extractor defaults
	if sel := c.Extractor.TableSelector; sel != "" {
		if _, err := cascadia.ParseGroup(sel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTableSelector, err)
		}
	}

	if sel := c.Extractor.ReferenceSelector; sel != "" {
		if _, err := cascadia.ParseGroup(sel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidReferenceSelector, err)
		}
	}

	switch c.Output.Format {
	case FormatInfobox:
		if c.Output.Template == "" {
			return ErrMissingTemplate
		}
	case FormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.Format)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Office: %s, Format: %s, Output: %q, Sign: %t}",
		c.Extractor.Office,
		c.Output.Format,
		c.Output.Path,
		c.Output.Sign,
	)
}
