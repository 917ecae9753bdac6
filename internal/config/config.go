// Package config provides configuration management for the travel planning
// tools. Everything has a built-in default; a YAML file can override weights,
// thresholds, the taxonomy, and logging.
package config

import (
	"errors"
	"fmt"
	"os"

	govalidator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"smarttravel/internal/decision"
	"smarttravel/internal/insights"
	"smarttravel/internal/ranking"
	"smarttravel/internal/taxonomy"
	"smarttravel/internal/validator"
)

// Configuration validation errors.
var (
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidAlertPenalty  = errors.New("decision.alert_penalty must be between 0 and 1")
	ErrBudgetThresholdOrder = errors.New("insights.budget.warning cannot exceed insights.budget.critical")
)

var validate = govalidator.New()

// Config is the complete tool configuration.
type Config struct {
	Decision     DecisionConfig     `yaml:"decision"`
	Ranking      RankingConfig      `yaml:"ranking"`
	Insights     insights.Config    `yaml:"insights"`
	Taxonomy     *taxonomy.Taxonomy `yaml:"taxonomy,omitempty"`
	ErrorCatalog validator.Catalog  `yaml:"error_catalog,omitempty" validate:"omitempty,dive"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// DecisionConfig tunes the itinerary decision engine.
type DecisionConfig struct {
	Weights      decision.Weights `yaml:"weights"`
	AlertPenalty float64          `yaml:"alert_penalty"`
}

// RankingConfig tunes the composite place ranking.
type RankingConfig struct {
	Weights ranking.Weights `yaml:"weights"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Decision: DecisionConfig{
			Weights:      decision.DefaultWeights(),
			AlertPenalty: decision.DefaultAlertPenalty,
		},
		Ranking: RankingConfig{
			Weights: ranking.DefaultWeights(),
		},
		Insights: insights.DefaultConfig(),
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML configuration from path, overlaying the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
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

// Validate checks the configuration: struct tags first, then the cross-field
// rules tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Decision.AlertPenalty < 0 || c.Decision.AlertPenalty > 1 {
		return ErrInvalidAlertPenalty
	}

	if c.Insights.Budget.Warning > c.Insights.Budget.Critical {
		return ErrBudgetThresholdOrder
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// TaxonomyOrDefault returns the configured taxonomy, or the built-in one.
func (c *Config) TaxonomyOrDefault() *taxonomy.Taxonomy {
	if c.Taxonomy != nil {
		return c.Taxonomy
	}

	return taxonomy.Default()
}

// CatalogOrDefault returns the built-in message catalog with any configured
// per-code overrides applied on top. Codes absent from the override keep
// their default templates.
func (c *Config) CatalogOrDefault() validator.Catalog {
	catalog := validator.DefaultCatalog()

	for code, tpl := range c.ErrorCatalog {
		catalog[code] = tpl
	}

	return catalog
}
