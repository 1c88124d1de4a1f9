package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validOffer returns an offer that passes shape validation.
func validOffer() Offer {
	return Offer{
		ID:          "1",
		Origin:      "JFK",
		Destination: "OAK",
		Airline:     "B6",
		Price:       PriceInfo{Amount: 420, Currency: "USD"},
		Nonstop:     true,
	}
}

func TestOffer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *Offer)
		wantErr string
	}{
		{
			name:    "valid offer",
			modify:  func(o *Offer) {},
			wantErr: "",
		},
		{
			name:    "missing origin",
			modify:  func(o *Offer) { o.Origin = "" },
			wantErr: "missing origin",
		},
		{
			name:    "missing destination",
			modify:  func(o *Offer) { o.Destination = "" },
			wantErr: "missing destination",
		},
		{
			name:    "missing airline",
			modify:  func(o *Offer) { o.Airline = "" },
			wantErr: "missing validating airline",
		},
		{
			name:    "zero price",
			modify:  func(o *Offer) { o.Price.Amount = 0 },
			wantErr: "non-positive price",
		},
		{
			name:    "missing currency",
			modify:  func(o *Offer) { o.Price.Currency = "" },
			wantErr: "missing price currency",
		},
		{
			name:    "connecting itinerary",
			modify:  func(o *Offer) { o.Nonstop = false },
			wantErr: "not nonstop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := validOffer()
			tt.modify(&offer)

			err := offer.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOffer), "should wrap ErrInvalidOffer")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
