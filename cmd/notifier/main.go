// Package main is the entry point for the flight deal notifier.
//
// The binary performs exactly one search-and-notify run per invocation and
// is intended to be triggered by an external scheduler (e.g. cron). It
// always exits 0: every failure, configuration included, is surfaced
// through logging so an unattended schedule keeps running.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/adapter/notifier/smtpmail"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/adapter/provider/amadeus"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/config"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/timeutil"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/usecase"
)

func main() {
	// Configuration failures are fatal to the run but not to the exit
	// code: log once and stop before any provider query.
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Configuration invalid, aborting run")
		return
	}

	setupGlobalLogger(cfg)
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-notifier",
	})

	log.Info().
		Strs("origins", cfg.Search.Origins).
		Strs("destinations", cfg.Search.Destinations).
		Float64("max_price", cfg.Search.MaxPrice).
		Msg("Configuration loaded")

	provider := amadeus.NewAdapter(amadeus.Config{
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		BaseURL:      cfg.Amadeus.BaseURL,
		Timeout:      cfg.Amadeus.Timeout,
	}, appLog)

	notifier, err := smtpmail.NewSender(smtpmail.Config{
		Host:     cfg.Email.SMTPServer,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.Sender,
		Password: cfg.Email.SenderPassword,
	}, appLog)
	if err != nil {
		log.Error().Err(err).Msg("Notifier setup failed, aborting run")
		return
	}

	runner, err := usecase.NewRunner(cfg.Criteria(), provider, notifier,
		cfg.Email.Sender, cfg.Email.Recipient, timeutil.NewRealClock(), appLog)
	if err != nil {
		log.Error().Err(err).Msg("Runner setup failed, aborting run")
		return
	}

	report := runner.Run(context.Background())
	log.Info().
		Str("run_id", report.RunID).
		Str("summary", report.Describe()).
		Msg("Run finished")
}

// setupGlobalLogger configures the global zerolog logger based on config.
func setupGlobalLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
