package update_booking_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByPlaceAndDate(ctx context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
	LockPlaceDate(ctx context.Context, placeID int64, date time.Time) error
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error)
}

// PlaceRepository интерфейс репозитория объектов
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker взаимное исключение внутри процесса по ключу (объект, дата)
type Locker interface {
	Lock(key string) (unlock func())
}

// Metrics интерфейс метрик use case
type Metrics interface {
	IncTransition(event, to string)
	IncRejection(operation, kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
