package update_booking_status

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	Principal domain.Principal    // Кто выполняет действие
	BookingID int64               // ID бронирования
	Event     domain.BookingEvent // confirm, complete или cancel
}

// Response бронирование после перехода
type Response struct {
	ID             int64
	UserID         int64
	PlaceID        int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         string
	PreviousStatus string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
