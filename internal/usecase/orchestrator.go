package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/timeutil"
)

// RunReport summarizes one end-to-end execution for the caller.
// All failure detail has already been logged by the time it is returned;
// nothing in the report requires the process to exit non-zero.
type RunReport struct {
	// RunID is the generated identifier tagging all logs for this run.
	RunID string

	// OffersFound is the number of valid offers aggregated across pairs.
	OffersFound int

	// PairFailures is the number of pair queries the provider failed.
	PairFailures int

	// SkippedOffers is the number of offers excluded for shape violations.
	SkippedOffers int

	// Notified reports whether the notifier was invoked and succeeded.
	Notified bool

	// DeliveryErr is set when the notifier was invoked but failed.
	DeliveryErr error
}

// Runner wires the executor, composer, and notifier into one end-to-end
// execution. It owns top-level failure reporting: provider failures beyond
// per-pair isolation, delivery failures, and collaborator panics are all
// absorbed and logged at this boundary.
type Runner struct {
	criteria  domain.SearchCriteria
	executor  *Executor
	notifier  domain.Notifier
	sender    string
	recipient string
	log       *logger.Logger
}

// NewRunner creates a Runner for the given criteria and collaborators.
// Missing collaborators or invalid criteria are configuration errors:
// they are reported here, before any pair search can begin.
func NewRunner(criteria domain.SearchCriteria, provider domain.OfferProvider, notifier domain.Notifier, sender, recipient string, clock timeutil.Clock, log *logger.Logger) (*Runner, error) {
	if provider == nil {
		return nil, errors.New("offer provider is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if sender == "" {
		return nil, errors.New("sender identity is required")
	}
	if recipient == "" {
		return nil, errors.New("recipient identity is required")
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Runner{
		criteria:  criteria,
		executor:  NewExecutor(provider, clock, log),
		notifier:  notifier,
		sender:    sender,
		recipient: recipient,
		log:       log,
	}, nil
}

// Run executes search -> aggregate -> compose -> (conditionally) send,
// exactly once. It never panics and never returns an error: the process is
// designed to run unattended on a schedule, so every failure is absorbed
// here and surfaced through logging only.
func (r *Runner) Run(ctx context.Context) (report RunReport) {
	report.RunID = uuid.NewString()
	log := r.log.WithRun(report.RunID)

	// A collaborator panic must not escape the run boundary.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("Run aborted by panic")
		}
	}()

	log.Info().
		Int("pairs", len(r.criteria.Pairs())).
		Float64("max_price", r.criteria.MaxPrice).
		Msg("Starting flight search run")

	outcome := r.executor.Execute(ctx, r.criteria)
	report.OffersFound = len(outcome.Offers)
	report.PairFailures = len(outcome.Failures)
	report.SkippedOffers = outcome.Skipped

	for _, failure := range outcome.Failures {
		log.Error().
			Str("pair", failure.Pair.String()).
			Err(failure.Err).
			Msg("Pair search failed")
	}

	msg, ok := Compose(outcome.Offers, r.sender, r.recipient)
	if !ok {
		log.Info().Msg("No flights found. No email sent.")
		return report
	}

	if err := r.notifier.Send(ctx, msg); err != nil {
		report.DeliveryErr = err
		log.Error().Err(err).Msg("Error sending email")
		return report
	}

	report.Notified = true
	log.Info().
		Int("offers", report.OffersFound).
		Str("recipient", r.recipient).
		Msg("Email sent successfully")
	return report
}

// Describe returns a short human-readable summary of the report for logs.
func (r RunReport) Describe() string {
	return fmt.Sprintf("offers=%d pair_failures=%d skipped=%d notified=%t",
		r.OffersFound, r.PairFailures, r.SkippedOffers, r.Notified)
}
