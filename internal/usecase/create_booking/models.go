package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя из токена
	PlaceID   int64            // ID объекта
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала, например "10:00"
	EndTime   types.TimeString // Время окончания, например "11:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	PlaceID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
