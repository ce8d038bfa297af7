package find_available_places

import (
	"context"

	findPlaces "github.com/m04kA/SMC-PlaceBooking/internal/usecase/find_available_places"
)

type FindAvailablePlacesUseCase interface {
	Execute(ctx context.Context, req *findPlaces.Request) (*findPlaces.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
