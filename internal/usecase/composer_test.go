package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
)

const (
	testSender    = "sender@example.com"
	testRecipient = "recipient@example.com"
)

func TestCompose_EmptyAggregateNoNotification(t *testing.T) {
	tests := []struct {
		name   string
		offers []domain.Offer
	}{
		{name: "nil offers", offers: nil},
		{name: "empty slice", offers: []domain.Offer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := Compose(tt.offers, testSender, testRecipient)

			assert.False(t, ok, "empty aggregate signals no notification required")
			assert.Zero(t, msg)
		})
	}
}

func TestCompose_SubjectEncodesCount(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		wantSubject string
	}{
		{"one offer", 1, "Flight Alert: 1 Direct Flights Found!"},
		{"two offers", 2, "Flight Alert: 2 Direct Flights Found!"},
		{"ten offers", 10, "Flight Alert: 10 Direct Flights Found!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers := make([]domain.Offer, tt.count)
			for i := range offers {
				offers[i] = testOffer("1", "JFK", "OAK", 420)
			}

			msg, ok := Compose(offers, testSender, testRecipient)
			require.True(t, ok)
			assert.Equal(t, tt.wantSubject, msg.Subject)
		})
	}
}

func TestCompose_BodyFormat(t *testing.T) {
	offers := []domain.Offer{
		testOffer("1", "JFK", "OAK", 420),
		testOffer("2", "JFK", "SJC", 480.5),
	}

	msg, ok := Compose(offers, testSender, testRecipient)
	require.True(t, ok)

	assert.Equal(t, testSender, msg.From)
	assert.Equal(t, testRecipient, msg.To)

	// Field order and presence per offer block are a presentation contract.
	want := "Direct Flights Found:\n\n" +
		"From: JFK To: OAK\n" +
		"Airline: B6\n" +
		"Price: 420.00 USD\n\n" +
		"From: JFK To: SJC\n" +
		"Airline: B6\n" +
		"Price: 480.50 USD\n\n"
	assert.Equal(t, want, msg.Body)
}

func TestCompose_PreservesAggregationOrder(t *testing.T) {
	// Offers are listed in aggregation order, not sorted by price.
	offers := []domain.Offer{
		testOffer("1", "LGA", "OAK", 480),
		testOffer("2", "JFK", "OAK", 420),
	}

	msg, ok := Compose(offers, testSender, testRecipient)
	require.True(t, ok)

	first := strings.Index(msg.Body, "From: LGA To: OAK")
	second := strings.Index(msg.Body, "From: JFK To: OAK")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestCompose_Idempotent(t *testing.T) {
	offers := []domain.Offer{
		testOffer("1", "JFK", "OAK", 420),
		testOffer("2", "JFK", "OAK", 480),
	}

	first, ok1 := Compose(offers, testSender, testRecipient)
	second, ok2 := Compose(offers, testSender, testRecipient)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second, "composing twice must yield an identical message")
}
