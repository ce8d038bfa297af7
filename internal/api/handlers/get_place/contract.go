package get_place

import (
	"context"

	"github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
)

type PlaceService interface {
	GetByID(ctx context.Context, id int64) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
