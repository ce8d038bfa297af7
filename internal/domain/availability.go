package domain

import "github.com/m04kA/SMC-PlaceBooking/pkg/types"

// SlotAvailability занятость одного слота сетки
type SlotAvailability struct {
	Slot     TimeRange
	Booked   int
	Capacity int
}

// Available true, если в слоте остались места
func (s SlotAvailability) Available() bool {
	return s.Booked < s.Capacity
}

// Remaining количество свободных мест
func (s SlotAvailability) Remaining() int {
	if s.Booked >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Booked
}

// CalculateSlotAvailability считает для каждого слота сетки активные бронирования, пересекающиеся с ним
func CalculateSlotAvailability(place *Place, bookings []*Booking) []SlotAvailability {
	grid := GenerateSlotGrid(place)
	result := make([]SlotAvailability, len(grid))

	for i, slot := range grid {
		result[i] = SlotAvailability{
			Slot:     slot,
			Booked:   CountOverlapping(bookings, slot, 0),
			Capacity: place.Capacity,
		}
	}

	return result
}

// CountOverlapping считает активные бронирования, пересекающиеся с r
// excludeID исключает редактируемое бронирование (0 - ничего не исключать)
func CountOverlapping(bookings []*Booking, r TimeRange, excludeID int64) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Range().Overlaps(r) {
			count++
		}
	}
	return count
}

// CountCovering считает активные бронирования, покрывающие момент t: start <= t < end
func CountCovering(bookings []*Booking, t types.TimeString) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() && b.Range().Contains(t) {
			count++
		}
	}
	return count
}

// IsAvailableAt true, если объект открыт в момент t и покрывающих t бронирований меньше вместимости
func IsAvailableAt(place *Place, bookings []*Booking, t types.TimeString) bool {
	if !place.IsOpenAt(t) {
		return false
	}
	return CountCovering(bookings, t) < place.Capacity
}
