package find_available_places

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByPlacesAndDate(ctx context.Context, placeIDs []int64, date time.Time) (map[int64][]*domain.Booking, error)
}

// PlaceRepository интерфейс репозитория объектов
type PlaceRepository interface {
	ListOpenAt(ctx context.Context, t types.TimeString) ([]*domain.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
