package domain

import "context"

//go:generate mockgen -source=collaborators.go -destination=mocks.go -package=domain

// OfferProvider is the external flight-search collaborator.
// Implementations translate a ProviderQuery into one provider API call and
// normalize the response into domain offers.
type OfferProvider interface {
	// Search executes one pair query and returns the matching offers in
	// the provider's response order. A failed query returns a
	// *ProviderError; an empty result is not an error.
	Search(ctx context.Context, query ProviderQuery) ([]Offer, error)
}

// Notifier is the external delivery collaborator.
// It is invoked at most once per run, and only when offers were found.
type Notifier interface {
	// Send delivers the consolidated notification.
	// A failed delivery returns a *DeliveryError.
	Send(ctx context.Context, msg NotificationMessage) error
}
