package domain

// NotificationMessage is the consolidated alert derived from one run's
// aggregated offers. It is derived deterministically: the same offers in the
// same order always produce an identical message.
type NotificationMessage struct {
	// From is the sender identity (email address).
	From string

	// To is the recipient identity (email address).
	To string

	// Subject is the subject line; it encodes the offer count.
	Subject string

	// Body is the plain-text body, one block per offer in aggregation order.
	Body string
}
