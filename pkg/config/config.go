// pkg/config/config.go
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration. Values come from the
// environment (optionally via a .env file); every analysis run receives an
// explicit copy, so there is no process-wide mutable settings state.
type Config struct {
	// Analysis settings
	AnalysisPoints       int    `envconfig:"ANALYSIS_POINTS" default:"100" validate:"gte=10,lte=500"`
	TimeThresholdSeconds int    `envconfig:"TIME_THRESHOLD_SECONDS" default:"10800" validate:"gte=3600,lte=36000"`
	ChangeoverType       string `envconfig:"CHANGEOVER_TYPE" default:"干清" validate:"required"`

	// Allow-lists for the two datasets. The activity dataset carries its own
	// spelling of the line identifiers.
	BatchLocations []string `envconfig:"BATCH_LOCATIONS" default:"CP Line 9,CP Line 10,CP Line 11,CP Line 12,CP Line 05,CP Line 08" validate:"min=1"`
	ActivityAreas  []string `envconfig:"ACTIVITY_AREAS" default:"CPLine 9,CP Line 10,CP Line 11,CP Line 12,CP Line 05,CP Line08" validate:"min=1"`

	// Service settings
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
}

// Load loads configuration from environment variables. A .env file in the
// working directory is honored when present but is not required.
func Load() (*Config, error) {
	// A missing .env file is the normal deployed case.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("SPC", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and in range.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
