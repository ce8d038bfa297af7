package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

type stubBookings struct {
	bookings []*domain.Booking
	err      error
}

func (s stubBookings) GetByPlaceAndDate(context.Context, int64, time.Time, bool) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubPlaces map[int64]*domain.Place

func (s stubPlaces) GetByID(_ context.Context, id int64) (*domain.Place, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, placeRepo.ErrPlaceNotFound
}

var date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

func place() *domain.Place {
	return &domain.Place{
		ID:                  1,
		Name:                "Бассейн",
		Category:            domain.CategoryPool,
		OpenTime:            "08:00",
		CloseTime:           "11:30",
		SlotDurationMinutes: 60,
		Capacity:            2,
	}
}

func booking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		PlaceID:   1,
		Date:      date,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

func TestExecute_CountsOverlappingActiveBookings(t *testing.T) {
	uc := NewUseCase(stubBookings{bookings: []*domain.Booking{
		booking("08:00", "09:00", domain.StatusConfirmed),
		booking("08:00", "09:00", domain.StatusPending),
		booking("09:00", "10:00", domain.StatusPending),
		booking("09:00", "10:00", domain.StatusCancelled),
	}}, stubPlaces{1: place()}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{PlaceID: 1, Date: date})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
	assert.Equal(t, 2, resp.Capacity)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].EndTime)
	assert.Equal(t, 2, resp.Slots[0].Booked)
	assert.False(t, resp.Slots[0].Available)
	assert.Zero(t, resp.Slots[0].Remaining)

	assert.Equal(t, 1, resp.Slots[1].Booked)
	assert.True(t, resp.Slots[1].Available)
	assert.Equal(t, 1, resp.Slots[1].Remaining)

	assert.Equal(t, types.TimeString("11:00"), resp.Slots[2].EndTime)
	assert.Zero(t, resp.Slots[2].Booked)
}

func TestExecute_PlaceNotFound(t *testing.T) {
	uc := NewUseCase(stubBookings{}, stubPlaces{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PlaceID: 7, Date: date})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(stubBookings{}, stubPlaces{1: place()}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PlaceID: 1})

	assert.ErrorIs(t, err, domain.ErrInputFormat)
}

func TestExecute_StorageError(t *testing.T) {
	uc := NewUseCase(stubBookings{err: errors.New("db down")}, stubPlaces{1: place()}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PlaceID: 1, Date: date})

	assert.ErrorIs(t, err, ErrInternal)
}
