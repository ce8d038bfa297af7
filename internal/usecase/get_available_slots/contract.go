package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPlaceAndDate(ctx context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
}

// PlaceRepository интерфейс репозитория объектов
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
