package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
)

// sampleDTO returns a parseable raw offer.
func sampleDTO() offerDTO {
	return offerDTO{
		ID: "1",
		Itineraries: []itineraryDTO{
			{
				Duration: "PT6H25M",
				Segments: []segmentDTO{
					{
						Departure:   endpointDTO{IataCode: "JFK", At: "2026-08-30T07:00:00"},
						Arrival:     endpointDTO{IataCode: "OAK", At: "2026-08-30T10:25:00"},
						CarrierCode: "B6",
						Number:      "415",
					},
				},
			},
		},
		Price:                  priceDTO{Currency: "USD", Total: "420.00"},
		ValidatingAirlineCodes: []string{"B6"},
	}
}

func TestNormalizeOffer(t *testing.T) {
	offer, err := normalizeOffer(sampleDTO())
	require.NoError(t, err)

	assert.Equal(t, "1", offer.ID)
	assert.Equal(t, "JFK", offer.Origin)
	assert.Equal(t, "OAK", offer.Destination)
	assert.Equal(t, "B6", offer.Airline)
	assert.Equal(t, 420.00, offer.Price.Amount)
	assert.Equal(t, "USD", offer.Price.Currency)
	assert.True(t, offer.Nonstop)
	assert.NoError(t, offer.Validate())
}

func TestNormalizeOffer_ConnectingItinerary(t *testing.T) {
	dto := sampleDTO()
	dto.Itineraries[0].Segments = append(dto.Itineraries[0].Segments, segmentDTO{
		Departure:   endpointDTO{IataCode: "OAK", At: "2026-08-30T12:00:00"},
		Arrival:     endpointDTO{IataCode: "SJC", At: "2026-08-30T12:45:00"},
		CarrierCode: "B6",
	})

	offer, err := normalizeOffer(dto)
	require.NoError(t, err)

	// Origin/destination span the full journey and the nonstop flag is
	// honest; the pipeline decides whether to exclude the offer.
	assert.Equal(t, "JFK", offer.Origin)
	assert.Equal(t, "SJC", offer.Destination)
	assert.False(t, offer.Nonstop)
	assert.Error(t, offer.Validate())
}

func TestNormalizeOffer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(dto *offerDTO)
		wantErr string
	}{
		{
			name:    "no itineraries",
			modify:  func(dto *offerDTO) { dto.Itineraries = nil },
			wantErr: "no itineraries",
		},
		{
			name:    "no segments",
			modify:  func(dto *offerDTO) { dto.Itineraries[0].Segments = nil },
			wantErr: "no segments",
		},
		{
			name:    "unparseable price",
			modify:  func(dto *offerDTO) { dto.Price.Total = "four-twenty" },
			wantErr: "failed to parse price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := sampleDTO()
			tt.modify(&dto)

			_, err := normalizeOffer(dto)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeOffer_MissingFieldsSurviveToValidation(t *testing.T) {
	// Missing price or airline still normalizes; the offer fails shape
	// validation downstream instead of being silently dropped here.
	dto := sampleDTO()
	dto.Price.Total = ""
	dto.ValidatingAirlineCodes = nil

	offer, err := normalizeOffer(dto)
	require.NoError(t, err)
	assert.Zero(t, offer.Price.Amount)
	assert.Empty(t, offer.Airline)
	assert.Error(t, offer.Validate())
}

func TestNormalize_SkipsUnparseableOffers(t *testing.T) {
	good := sampleDTO()
	bad := sampleDTO()
	bad.ID = "2"
	bad.Itineraries = nil

	offers := normalize([]offerDTO{good, bad}, logger.Nop())

	require.Len(t, offers, 1)
	assert.Equal(t, "1", offers[0].ID)
}

func TestNormalize_PreservesResponseOrder(t *testing.T) {
	first := sampleDTO()
	second := sampleDTO()
	second.ID = "2"
	second.Price.Total = "480.00"

	offers := normalize([]offerDTO{first, second}, logger.Nop())

	require.Len(t, offers, 2)
	assert.Equal(t, "1", offers[0].ID)
	assert.Equal(t, "2", offers[1].ID)
}
