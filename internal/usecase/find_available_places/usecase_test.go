package find_available_places

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

type stubPlaces struct {
	places []*domain.Place
	err    error
	asked  types.TimeString
}

func (s *stubPlaces) ListOpenAt(_ context.Context, t types.TimeString) ([]*domain.Place, error) {
	s.asked = t
	return s.places, s.err
}

type stubBookings struct {
	byPlace map[int64][]*domain.Booking
	ids     []int64
}

func (s *stubBookings) GetActiveByPlacesAndDate(_ context.Context, ids []int64, _ time.Time) (map[int64][]*domain.Booking, error) {
	s.ids = ids
	return s.byPlace, nil
}

var date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

func place(id int64, capacity int) *domain.Place {
	return &domain.Place{
		ID:                  id,
		Name:                "Объект",
		Category:            domain.CategoryGym,
		OpenTime:            "08:00",
		CloseTime:           "22:00",
		SlotDurationMinutes: 60,
		Capacity:            capacity,
	}
}

func booking(placeID int64, start, end string) *domain.Booking {
	return &domain.Booking{
		PlaceID:   placeID,
		Date:      date,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    domain.StatusConfirmed,
	}
}

func TestExecute_FiltersFullPlaces(t *testing.T) {
	places := &stubPlaces{places: []*domain.Place{place(1, 1), place(2, 2), place(3, 1)}}
	bookings := &stubBookings{byPlace: map[int64][]*domain.Booking{
		1: {booking(1, "10:00", "11:00")},
		2: {booking(2, "10:00", "11:00")},
		3: {booking(3, "09:00", "10:00")},
	}}
	uc := NewUseCase(bookings, places, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Time: "10:00"})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), places.asked)
	assert.Equal(t, []int64{1, 2, 3}, bookings.ids)
	require.Len(t, resp.Places, 2)
	assert.Equal(t, int64(2), resp.Places[0].Place.ID)
	assert.Equal(t, 1, resp.Places[0].Booked)
	assert.Equal(t, 1, resp.Places[0].Remaining)
	// бронь 09:00-10:00 не покрывает момент 10:00
	assert.Equal(t, int64(3), resp.Places[1].Place.ID)
	assert.Zero(t, resp.Places[1].Booked)
}

func TestExecute_NoOpenPlaces(t *testing.T) {
	uc := NewUseCase(&stubBookings{byPlace: map[int64][]*domain.Booking{}}, &stubPlaces{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Time: "23:00"})

	require.NoError(t, err)
	assert.Empty(t, resp.Places)
}

func TestExecute_InvalidTime(t *testing.T) {
	uc := NewUseCase(&stubBookings{}, &stubPlaces{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: date, Time: "25:99"})

	assert.ErrorIs(t, err, domain.ErrInputFormat)
}

func TestExecute_StorageError(t *testing.T) {
	uc := NewUseCase(&stubBookings{}, &stubPlaces{err: errors.New("db down")}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: date, Time: "10:00"})

	assert.ErrorIs(t, err, ErrInternal)
}
