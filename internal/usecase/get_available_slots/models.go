package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Request модель запроса на получение слотов объекта
type Request struct {
	PlaceID int64     // ID объекта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со слотами объекта на дату
type Response struct {
	PlaceID             int64
	Date                time.Time
	SlotDurationMinutes int
	Capacity            int
	Slots               []Slot
}

// Slot занятость одного слота сетки
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "10:00"
	EndTime   types.TimeString // Время окончания слота
	Booked    int              // Активных бронирований, пересекающихся со слотом
	Capacity  int              // Вместимость объекта
	Remaining int              // Свободных мест
	Available bool             // Booked < Capacity
}
