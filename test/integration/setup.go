// Package integration provides helpers and integration tests for the
// flight deal notifier. Integration tests exercise a full run through
// the orchestrator with configurable provider and notifier doubles.
package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/timeutil"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/usecase"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/test/mock"
)

const (
	SenderEmail    = "alerts@example.com"
	RecipientEmail = "traveler@example.com"
)

// RunDate is the frozen "now" used by every integration run, so the
// computed departure date is deterministic.
var RunDate = time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)

// DefaultCriteria returns a valid 2x2 search sweep (four route pairs).
func DefaultCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origins:      []string{"LGA", "JFK"},
		Destinations: []string{"OAK", "SJC"},
		Airlines:     []string{"B6", "UA", "AA"},
		MaxPrice:     500,
		DaysAhead:    1,
		Adults:       1,
		MaxResults:   10,
	}
}

// CreateRunner wires a runner around the given doubles with a frozen
// clock and a silent logger.
func CreateRunner(t *testing.T, criteria domain.SearchCriteria, provider *mock.Provider, notifier *mock.Notifier) *usecase.Runner {
	t.Helper()

	runner, err := usecase.NewRunner(criteria, provider, notifier,
		SenderEmail, RecipientEmail, timeutil.NewMockClock(RunDate), logger.Nop())
	require.NoError(t, err)
	return runner
}
