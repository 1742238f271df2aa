package config

import (
	"github.com/caarlos0/env/v11"

	"adpilot/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional Redis used for run locks and the
	// generation cache (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Gemini configures the text-generation gateway (GEMINI_*).
	Gemini configs.Gemini `envPrefix:"GEMINI_"`

	// Scheduler configures the daily aggregation job (SCHEDULER_*).
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`

	// GoogleAds configures the Google Ads metrics source (GOOGLE_ADS_*).
	GoogleAds configs.GoogleAds `envPrefix:"GOOGLE_ADS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, including a missing required variable, an error is
// returned. All other fields fall back to their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Aggregate is the subset of Config used by the aggregation CLI, which
// needs neither the HTTP server nor the text-generation gateway.
type Aggregate struct {
	Env       string            `env:"ENV" envDefault:"prod"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	GoogleAds configs.GoogleAds `envPrefix:"GOOGLE_ADS_"`
}

// LoadAggregate reads the aggregation CLI configuration from the
// environment.
func LoadAggregate() (Aggregate, error) {
	var cfg Aggregate
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
