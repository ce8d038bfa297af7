package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByPlaceAndDate(ctx context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
}

// PlaceRepository интерфейс репозитория объектов
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
