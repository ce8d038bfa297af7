package places

import (
	"context"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// PlaceRepository интерфейс репозитория объектов
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
	UpdateSchedule(ctx context.Context, place *domain.Place) (*domain.Place, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
