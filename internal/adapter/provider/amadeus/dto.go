package amadeus

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// searchResponse is the flight-offers search response envelope.
type searchResponse struct {
	Data   []offerDTO `json:"data"`
	Errors []apiError `json:"errors,omitempty"`
}

// offerDTO is one raw flight offer as returned by the provider.
type offerDTO struct {
	ID                     string         `json:"id"`
	Itineraries            []itineraryDTO `json:"itineraries"`
	Price                  priceDTO       `json:"price"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
}

// itineraryDTO is one directional journey within an offer.
type itineraryDTO struct {
	Duration string       `json:"duration"`
	Segments []segmentDTO `json:"segments"`
}

// segmentDTO is one flight leg within an itinerary.
type segmentDTO struct {
	Departure   endpointDTO `json:"departure"`
	Arrival     endpointDTO `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

// endpointDTO is a departure or arrival point of a segment.
type endpointDTO struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// priceDTO carries the offer total as a decimal string.
type priceDTO struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// apiError is one entry of the provider's error envelope.
type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
