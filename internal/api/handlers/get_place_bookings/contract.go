package get_place_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListPlaceBookings(ctx context.Context, principal domain.Principal, placeID int64, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
