// Package domain contains the core business entities and rules for the flight
// deal notifier. These entities are provider-agnostic and form the foundation
// upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
)

// SearchCriteria defines the immutable parameters for one notifier run.
// It is constructed once at startup from configuration and passed into the
// orchestrator; the core never reads ambient state.
type SearchCriteria struct {
	// Origins is the ordered list of departure airport IATA codes.
	Origins []string

	// Destinations is the ordered list of arrival airport IATA codes.
	Destinations []string

	// Airlines is the allow-list of airline IATA codes (e.g., "B6", "UA").
	// An empty list means the provider is not constrained by airline.
	Airlines []string

	// MaxPrice is the price ceiling per offer, in the provider's currency.
	MaxPrice float64

	// DaysAhead is the departure-date offset from now, in whole days.
	DaysAhead int

	// Adults is the number of adult passengers per query.
	Adults int

	// MaxResults caps the number of offers requested per pair query.
	MaxResults int
}

// PairQuery is one (origin, destination) combination drawn from the criteria.
// It is a value object with no identity beyond its fields.
type PairQuery struct {
	Origin      string
	Destination string
}

// String formats the pair as "LGA->OAK" for logging.
func (p PairQuery) String() string {
	return p.Origin + "->" + p.Destination
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// airlineCodeRegex matches IATA airline designators (2 alphanumeric characters).
var airlineCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidCriteria error if validation fails.
func (c *SearchCriteria) Validate() error {
	if len(c.Origins) == 0 {
		return fmt.Errorf("%w: at least one origin airport is required", ErrInvalidCriteria)
	}
	for _, code := range c.Origins {
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidCriteria, code)
		}
	}

	if len(c.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination airport is required", ErrInvalidCriteria)
	}
	for _, code := range c.Destinations {
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidCriteria, code)
		}
	}

	for _, code := range c.Airlines {
		if !airlineCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: airline must be a valid 2-character IATA code, got %q", ErrInvalidCriteria, code)
		}
	}

	if c.MaxPrice <= 0 {
		return fmt.Errorf("%w: max price must be greater than zero, got %v", ErrInvalidCriteria, c.MaxPrice)
	}

	if c.DaysAhead < 0 {
		return fmt.Errorf("%w: days ahead cannot be negative, got %d", ErrInvalidCriteria, c.DaysAhead)
	}

	if c.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidCriteria)
	}
	if c.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidCriteria)
	}

	if c.MaxResults < 1 {
		return fmt.Errorf("%w: max results must be at least 1", ErrInvalidCriteria)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (c *SearchCriteria) SetDefaults() {
	if c.Adults == 0 {
		c.Adults = 1
	}
	if c.MaxResults == 0 {
		c.MaxResults = 10
	}
}

// Pairs expands the criteria into the cartesian product of origins and
// destinations, origins outer and destinations inner. This ordering is an
// observable contract: aggregated offers preserve it.
func (c *SearchCriteria) Pairs() []PairQuery {
	pairs := make([]PairQuery, 0, len(c.Origins)*len(c.Destinations))
	for _, origin := range c.Origins {
		for _, destination := range c.Destinations {
			pairs = append(pairs, PairQuery{Origin: origin, Destination: destination})
		}
	}
	return pairs
}
