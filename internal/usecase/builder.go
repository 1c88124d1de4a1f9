// Package usecase contains the business logic for the notifier pipeline:
// per-pair search execution, result aggregation, notification composition,
// and the single-run orchestration that ties them together.
package usecase

import (
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
)

// DateLayout is the departure-date format expected by the provider.
const DateLayout = "2006-01-02"

// BuildQuery constructs the provider request for one (origin, destination)
// pair from the search criteria. Pure function: malformed criteria is a
// precondition violation handled at configuration time, not here.
func BuildQuery(criteria domain.SearchCriteria, pair domain.PairQuery, departureDate string) domain.ProviderQuery {
	return domain.ProviderQuery{
		Origin:        pair.Origin,
		Destination:   pair.Destination,
		DepartureDate: departureDate,
		Adults:        criteria.Adults,
		MaxResults:    criteria.MaxResults,
		NonStopOnly:   true,
		Airlines:      criteria.Airlines,
		MaxPrice:      criteria.MaxPrice,
	}
}
