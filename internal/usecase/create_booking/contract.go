package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPlaceAndDate(ctx context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
	LockPlaceDate(ctx context.Context, placeID int64, date time.Time) error
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

// AuditSink журнал аудита; вызов не ждет результата отправки
type AuditSink interface {
	Notify(userID int64, action string, ref domain.AuditRef)
}

// Metrics интерфейс метрик use case
type Metrics interface {
	IncBookingCreated()
	IncRejection(operation, kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
