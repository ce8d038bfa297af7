package find_available_places

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Request модель запроса: дата и момент времени
type Request struct {
	Date time.Time
	Time types.TimeString
}

// Response объекты, открытые и свободные в указанный момент
type Response struct {
	Date   time.Time
	Time   types.TimeString
	Places []AvailablePlace
}

// AvailablePlace объект и его занятость в момент запроса
type AvailablePlace struct {
	Place     *domain.Place
	Booked    int // Активных бронирований, покрывающих момент
	Remaining int
}
