package amadeus

import (
	"fmt"
	"strconv"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
)

// normalize converts raw provider offers to domain Offer entities.
// Offers that cannot be normalized at all are skipped with a log entry;
// shape-invariant checks (nonstop, positive price) are left to the pipeline
// so that the exclusion is observable where aggregation happens.
func normalize(raw []offerDTO, log *logger.Logger) []domain.Offer {
	result := make([]domain.Offer, 0, len(raw))

	for _, dto := range raw {
		offer, err := normalizeOffer(dto)
		if err != nil {
			log.Warn().
				Str("offer_id", dto.ID).
				Err(err).
				Msg("Skipping unparseable offer")
			continue
		}
		result = append(result, offer)
	}

	return result
}

// normalizeOffer converts a single raw offer to a domain Offer entity.
func normalizeOffer(dto offerDTO) (domain.Offer, error) {
	if len(dto.Itineraries) == 0 {
		return domain.Offer{}, fmt.Errorf("offer has no itineraries")
	}

	segments := dto.Itineraries[0].Segments
	if len(segments) == 0 {
		return domain.Offer{}, fmt.Errorf("itinerary has no segments")
	}

	amount := 0.0
	if dto.Price.Total != "" {
		parsed, err := strconv.ParseFloat(dto.Price.Total, 64)
		if err != nil {
			return domain.Offer{}, fmt.Errorf("failed to parse price %q: %w", dto.Price.Total, err)
		}
		amount = parsed
	}

	airline := ""
	if len(dto.ValidatingAirlineCodes) > 0 {
		airline = dto.ValidatingAirlineCodes[0]
	}

	return domain.Offer{
		ID:          dto.ID,
		Origin:      segments[0].Departure.IataCode,
		Destination: segments[len(segments)-1].Arrival.IataCode,
		Airline:     airline,
		Price: domain.PriceInfo{
			Amount:   amount,
			Currency: dto.Price.Currency,
		},
		// A single segment on the (only) outbound itinerary means nonstop.
		Nonstop: len(dto.Itineraries) == 1 && len(segments) == 1,
	}, nil
}
