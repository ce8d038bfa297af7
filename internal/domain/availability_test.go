package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSlotAvailability(t *testing.T) {
	place := &Place{OpenTime: "09:00", CloseTime: "12:00", SlotDurationMinutes: 60, Capacity: 2}
	bookings := []*Booking{
		testBooking(1, "09:00", "10:00", StatusConfirmed),
		testBooking(2, "09:00", "10:00", StatusPending),
		testBooking(3, "10:00", "11:00", StatusCancelled),
		testBooking(4, "10:00", "11:00", StatusPending),
	}

	result := CalculateSlotAvailability(place, bookings)

	require.Len(t, result, 3)
	assert.Equal(t, 2, result[0].Booked)
	assert.False(t, result[0].Available())
	assert.Equal(t, 0, result[0].Remaining())
	assert.Equal(t, 1, result[1].Booked)
	assert.True(t, result[1].Available())
	assert.Equal(t, 0, result[2].Booked)
	assert.Equal(t, 2, result[2].Capacity)
}

func TestIsAvailableAt(t *testing.T) {
	place := testPlace()
	bookings := []*Booking{testBooking(1, "09:00", "10:00", StatusConfirmed)}

	assert.False(t, IsAvailableAt(place, bookings, "09:00"))
	assert.False(t, IsAvailableAt(place, bookings, "09:59"))
	assert.True(t, IsAvailableAt(place, bookings, "10:00"), "booking end is exclusive")
	assert.False(t, IsAvailableAt(place, nil, "07:59"), "closed before open")
	assert.False(t, IsAvailableAt(place, nil, "22:00"), "close is exclusive")
	assert.True(t, IsAvailableAt(place, nil, "08:00"))
}

func TestBooking_IsExpiredAt(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	b := &Booking{Date: today, StartTime: "10:00", EndTime: "11:00", Status: StatusConfirmed}

	assert.False(t, b.IsExpiredAt(today.Add(10*time.Hour+30*time.Minute)))
	assert.True(t, b.IsExpiredAt(today.Add(11*time.Hour)))
	assert.True(t, b.IsExpiredAt(today.Add(11*time.Hour+time.Minute)))
	assert.True(t, b.IsExpiredAt(today.AddDate(0, 0, 1)))
	assert.False(t, b.IsExpiredAt(today.AddDate(0, 0, -1).Add(23*time.Hour)))

	b.Status = StatusCancelled
	assert.False(t, b.IsExpiredAt(today.AddDate(0, 0, 1)))
}
