package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
)

// subjectFormat encodes the offer count into the subject line.
const subjectFormat = "Flight Alert: %d Direct Flights Found!"

// bodyHeader opens the plain-text body before the per-offer blocks.
const bodyHeader = "Direct Flights Found:\n\n"

// Compose transforms aggregated offers into a notification message addressed
// from sender to recipient. It is deterministic: the same offers in the same
// order always yield an identical message.
//
// The second return value is false when the aggregate is empty, signalling
// that no notification is required; the notifier must not be invoked.
func Compose(offers []domain.Offer, sender, recipient string) (domain.NotificationMessage, bool) {
	if len(offers) == 0 {
		return domain.NotificationMessage{}, false
	}

	var body strings.Builder
	body.WriteString(bodyHeader)

	// One block per offer, in aggregation order. Field order and presence
	// (origin, destination, airline, price) are a presentation contract.
	for _, offer := range offers {
		body.WriteString("From: " + offer.Origin + " To: " + offer.Destination + "\n")
		body.WriteString("Airline: " + offer.Airline + "\n")
		body.WriteString("Price: " + formatPrice(offer.Price) + "\n\n")
	}

	return domain.NotificationMessage{
		From:    sender,
		To:      recipient,
		Subject: fmt.Sprintf(subjectFormat, len(offers)),
		Body:    body.String(),
	}, true
}

// formatPrice renders a price as "420.00 USD".
func formatPrice(p domain.PriceInfo) string {
	return strconv.FormatFloat(p.Amount, 'f', 2, 64) + " " + p.Currency
}
