package domain

// ProviderQuery is the provider-request value for one pair search.
// It is built from SearchCriteria and a single PairQuery by the query
// builder and handed opaquely to the OfferProvider.
type ProviderQuery struct {
	// Origin is the IATA code of the departure airport.
	Origin string

	// Destination is the IATA code of the arrival airport.
	Destination string

	// DepartureDate is the departure date in YYYY-MM-DD format.
	DepartureDate string

	// Adults is the number of adult passengers.
	Adults int

	// MaxResults caps the number of offers returned.
	MaxResults int

	// NonStopOnly restricts results to itineraries with zero stops.
	NonStopOnly bool

	// Airlines is the airline allow-list; the provider encodes it as needed.
	Airlines []string

	// MaxPrice is the price ceiling per offer.
	MaxPrice float64
}

// Pair returns the (origin, destination) pair this query was built for.
func (q ProviderQuery) Pair() PairQuery {
	return PairQuery{Origin: q.Origin, Destination: q.Destination}
}
