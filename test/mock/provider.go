// Package mock provides test doubles for the flight deal notifier.
// These mocks are designed for integration testing where we need
// configurable behavior (per-pair responses, errors, delays).
package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
)

// Provider is a configurable mock implementation of domain.OfferProvider.
// Responses can be configured globally or per route pair, which makes it
// easy to simulate partial failures across a cartesian sweep.
type Provider struct {
	offers     []domain.Offer
	err        error
	pairOffers map[domain.PairQuery][]domain.Offer
	pairErrs   map[domain.PairQuery]error
	delay      time.Duration

	mu      sync.Mutex
	queries []domain.ProviderQuery
}

// NewProvider creates a new mock provider. Behavior is configured
// using the builder pattern methods.
func NewProvider() *Provider {
	return &Provider{
		pairOffers: make(map[domain.PairQuery][]domain.Offer),
		pairErrs:   make(map[domain.PairQuery]error),
	}
}

// WithOffers configures the provider to return the given offers for
// every pair that has no pair-specific configuration.
func (p *Provider) WithOffers(offers []domain.Offer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to fail every query that has no
// pair-specific configuration.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithPairOffers configures the provider to return the given offers for
// one specific route pair.
func (p *Provider) WithPairOffers(origin, destination string, offers []domain.Offer) *Provider {
	p.pairOffers[domain.PairQuery{Origin: origin, Destination: destination}] = offers
	return p
}

// WithPairError configures the provider to fail queries for one
// specific route pair.
func (p *Provider) WithPairError(origin, destination string, err error) *Provider {
	p.pairErrs[domain.PairQuery{Origin: origin, Destination: destination}] = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing context cancellation.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Search implements domain.OfferProvider.Search.
// It records the query, respects context cancellation, and returns the
// configured response for the query's pair.
func (p *Provider) Search(ctx context.Context, query domain.ProviderQuery) ([]domain.Offer, error) {
	p.mu.Lock()
	p.queries = append(p.queries, query)
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pair := query.Pair()
	if err, ok := p.pairErrs[pair]; ok {
		return nil, err
	}
	if offers, ok := p.pairOffers[pair]; ok {
		return offers, nil
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.offers, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries)
}

// Queries returns a copy of the queries received so far, in order.
func (p *Provider) Queries() []domain.ProviderQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ProviderQuery, len(p.queries))
	copy(out, p.queries)
	return out
}

// Reset clears the recorded queries.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = nil
}

// Ensure Provider implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Provider)(nil)

// SampleOffers returns count valid nonstop offers for the given route.
// Prices start at 420 and step by 30 so tests get distinct amounts.
func SampleOffers(origin, destination string, count int) []domain.Offer {
	offers := make([]domain.Offer, count)
	for i := 0; i < count; i++ {
		offers[i] = domain.Offer{
			ID:          origin + "-" + destination + "-" + strconv.Itoa(i+1),
			Origin:      origin,
			Destination: destination,
			Airline:     "B6",
			Price: domain.PriceInfo{
				Amount:   420 + float64(i*30),
				Currency: "USD",
			},
			Nonstop: true,
		}
	}
	return offers
}
