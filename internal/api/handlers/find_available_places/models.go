package find_available_places

import (
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	placeModels "github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
	findPlaces "github.com/m04kA/SMC-PlaceBooking/internal/usecase/find_available_places"
)

// AvailablePlacesResponse HTTP response model
type AvailablePlacesResponse struct {
	Date   string                 `json:"date"`
	Time   string                 `json:"time"`
	Places []AvailablePlaceResult `json:"places"`
}

// AvailablePlaceResult объект и свободные места в запрошенный момент
type AvailablePlaceResult struct {
	placeModels.PlaceResponse
	BookedSpots    int `json:"bookedSpots"`
	AvailableSpots int `json:"availableSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findPlaces.Response) *AvailablePlacesResponse {
	places := make([]AvailablePlaceResult, 0, len(resp.Places))
	for _, p := range resp.Places {
		places = append(places, AvailablePlaceResult{
			PlaceResponse:  *placeModels.FromDomainPlace(p.Place),
			BookedSpots:    p.Booked,
			AvailableSpots: p.Remaining,
		})
	}

	return &AvailablePlacesResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Time:   resp.Time.String(),
		Places: places,
	}
}
