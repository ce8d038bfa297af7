package domain

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

func testPlace() *Place {
	return &Place{
		ID:                  1,
		Name:                "Арена",
		Category:            CategoryArena,
		OpenTime:            "08:00",
		CloseTime:           "22:00",
		SlotDurationMinutes: 60,
		Capacity:            1,
	}
}

func testDate() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
}

func testBooking(id int64, start, end string, status BookingStatus) *Booking {
	return &Booking{
		ID:        id,
		UserID:    10,
		PlaceID:   1,
		Date:      testDate(),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}
