package list_places

import (
	"context"

	"github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
)

type PlaceService interface {
	List(ctx context.Context, req *models.ListPlacesRequest) (*models.PlaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
