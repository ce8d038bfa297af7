package update_place

import (
	"context"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
)

type PlaceService interface {
	UpdateSchedule(ctx context.Context, principal domain.Principal, placeID int64, req *models.UpdatePlaceRequest) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
