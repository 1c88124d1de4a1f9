package domain

import "fmt"

// Offer represents a single priced flight itinerary returned by the provider
// for a given origin/destination/date.
type Offer struct {
	// ID is the provider-assigned identifier for this offer.
	ID string `json:"id"`

	// Origin is the IATA code of the departure airport.
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport.
	Destination string `json:"destination"`

	// Airline is the IATA code of the validating airline.
	Airline string `json:"airline"`

	// Price contains the total price for all passengers.
	Price PriceInfo `json:"price"`

	// Nonstop indicates the itinerary has zero intermediate stops.
	// The pipeline only accepts nonstop itineraries.
	Nonstop bool `json:"nonstop"`
}

// PriceInfo contains pricing information for an offer.
type PriceInfo struct {
	// Amount is the numeric price value.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD").
	Currency string `json:"currency"`
}

// Validate enforces the data-shape policy on a provider-returned offer.
// The provider is asked for nonstop flights only, but a malformed or
// connecting offer must be excluded from aggregation rather than trusted.
// Returns a wrapped ErrInvalidOffer error describing the violation.
func (o *Offer) Validate() error {
	if o.Origin == "" {
		return fmt.Errorf("%w: missing origin airport", ErrInvalidOffer)
	}
	if o.Destination == "" {
		return fmt.Errorf("%w: missing destination airport", ErrInvalidOffer)
	}
	if o.Airline == "" {
		return fmt.Errorf("%w: missing validating airline", ErrInvalidOffer)
	}
	if o.Price.Amount <= 0 {
		return fmt.Errorf("%w: missing or non-positive price", ErrInvalidOffer)
	}
	if o.Price.Currency == "" {
		return fmt.Errorf("%w: missing price currency", ErrInvalidOffer)
	}
	if !o.Nonstop {
		return fmt.Errorf("%w: itinerary is not nonstop", ErrInvalidOffer)
	}
	return nil
}
