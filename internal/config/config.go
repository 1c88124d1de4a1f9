// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Search  SearchConfig
	Amadeus AmadeusConfig
	Email   EmailConfig
	Logging LoggingConfig
}

// SearchConfig holds the route and constraint settings for one run.
type SearchConfig struct {
	Origins      []string `env:"ORIGIN_AIRPORTS" envDefault:"LGA,JFK"`
	Destinations []string `env:"DESTINATION_AIRPORTS" envDefault:"OAK,SJC"`
	Airlines     []string `env:"AIRLINES" envDefault:"B6,UA,AA"`
	MaxPrice     float64  `env:"MAX_PRICE" envDefault:"500"`
	DaysAhead    int      `env:"DAYS_AHEAD" envDefault:"1"`
	Adults       int      `env:"ADULTS" envDefault:"1"`
	MaxResults   int      `env:"MAX_RESULTS" envDefault:"10"`
}

// AmadeusConfig holds flight-search provider credentials and transport settings.
type AmadeusConfig struct {
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	Timeout      time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"30s"`
}

// EmailConfig holds sender/recipient identities and SMTP transport settings.
type EmailConfig struct {
	Sender         string `env:"SENDER_EMAIL"`
	SenderPassword string `env:"SENDER_EMAIL_PASSWORD"`
	Recipient      string `env:"RECIPIENT_EMAIL"`
	SMTPServer     string `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
// A configuration failure here is fatal to the run: it is reported once and
// no provider query is ever issued.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Criteria builds the immutable search criteria for the run.
// Load has already validated it.
func (c *Config) Criteria() domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origins:      c.Search.Origins,
		Destinations: c.Search.Destinations,
		Airlines:     c.Search.Airlines,
		MaxPrice:     c.Search.MaxPrice,
		DaysAhead:    c.Search.DaysAhead,
		Adults:       c.Search.Adults,
		MaxResults:   c.Search.MaxResults,
	}
	criteria.SetDefaults()
	return criteria
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Required credentials and identities, reported together.
	required := []struct {
		name  string
		value string
	}{
		{"AMADEUS_CLIENT_ID", cfg.Amadeus.ClientID},
		{"AMADEUS_CLIENT_SECRET", cfg.Amadeus.ClientSecret},
		{"SENDER_EMAIL", cfg.Email.Sender},
		{"SENDER_EMAIL_PASSWORD", cfg.Email.SenderPassword},
		{"RECIPIENT_EMAIL", cfg.Email.Recipient},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	criteria := cfg.Criteria()
	if err := criteria.Validate(); err != nil {
		return err
	}

	if cfg.Amadeus.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL must not be empty")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}

	if cfg.Email.SMTPServer == "" {
		return fmt.Errorf("SMTP_SERVER must not be empty")
	}
	if cfg.Email.SMTPPort < 1 || cfg.Email.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", cfg.Email.SMTPPort)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	return nil
}
