package usecase

import (
	"context"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/timeutil"
)

// PairFailure records a provider failure for a single pair query.
// Failures are surfaced for logging only; they never abort the run.
type PairFailure struct {
	// Pair is the (origin, destination) combination that failed.
	Pair domain.PairQuery

	// Err is the provider-reported error.
	Err error
}

// SearchOutcome is the partitioned result of one pass over all pairs.
type SearchOutcome struct {
	// Offers holds the aggregated valid offers, in pair-iteration order
	// (origins outer, destinations inner) then provider-response order
	// within a pair. Aggregation is concatenation only: no deduplication,
	// no re-sorting.
	Offers []domain.Offer

	// Failures holds one entry per failed pair query.
	Failures []PairFailure

	// Skipped counts provider-returned offers excluded for violating the
	// expected data shape (missing field or non-nonstop itinerary).
	Skipped int
}

// Executor runs the configured pair queries against the offer provider,
// isolating failures per pair. Execution is fully sequential; the outcome
// ordering is an observable contract.
type Executor struct {
	provider domain.OfferProvider
	clock    timeutil.Clock
	log      *logger.Logger
}

// NewExecutor creates an Executor. The clock supplies "now" for the
// days-ahead departure date; pass a MockClock in tests.
func NewExecutor(provider domain.OfferProvider, clock timeutil.Clock, log *logger.Logger) *Executor {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Executor{
		provider: provider,
		clock:    clock,
		log:      log,
	}
}

// Execute issues one provider query per configured pair, exactly
// N origins x M destinations in origin-major order.
//
// Per-pair behavior:
//   - success with offers: shape-validate each offer, drop and log invalid
//     ones, append the rest; continue.
//   - success with an empty list: record nothing; continue.
//   - provider error: record the failure and continue. One bad query must
//     not suppress valid results from other routes.
func (e *Executor) Execute(ctx context.Context, criteria domain.SearchCriteria) SearchOutcome {
	departureDate := e.clock.Now().AddDate(0, 0, criteria.DaysAhead).Format(DateLayout)

	outcome := SearchOutcome{Offers: []domain.Offer{}}

	for _, pair := range criteria.Pairs() {
		query := BuildQuery(criteria, pair, departureDate)

		offers, err := e.provider.Search(ctx, query)
		if err != nil {
			e.log.WithPair(pair.String()).Error().Err(err).Msg("Pair query failed")
			outcome.Failures = append(outcome.Failures, PairFailure{Pair: pair, Err: err})
			continue
		}

		if len(offers) == 0 {
			continue
		}

		kept := 0
		for _, offer := range offers {
			if verr := offer.Validate(); verr != nil {
				e.log.WithPair(pair.String()).Warn().
					Err(verr).
					Str("offer_id", offer.ID).
					Msg("Excluding malformed offer")
				outcome.Skipped++
				continue
			}
			outcome.Offers = append(outcome.Offers, offer)
			kept++
		}

		if kept > 0 {
			e.log.WithPair(pair.String()).Info().
				Int("count", kept).
				Str("departure_date", departureDate).
				Msg("Offers found")
		}
	}

	return outcome
}
