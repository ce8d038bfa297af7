package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/booking"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
	"github.com/m04kA/SMC-PlaceBooking/pkg/ptr"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

type stubBookings struct {
	bookings   []*domain.Booking
	lastStatus *domain.BookingStatus
	lastActive *bool
}

func (s *stubBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubBookings) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	s.lastStatus = status
	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID && (status == nil || b.Status == *status) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *stubBookings) GetByPlaceAndDate(_ context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	s.lastActive = &activeOnly
	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.PlaceID == placeID && domain.CompareDates(b.Date, date) == 0 {
			result = append(result, b)
		}
	}
	return result, nil
}

type stubPlaces map[int64]*domain.Place

func (s stubPlaces) GetByID(_ context.Context, id int64) (*domain.Place, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, placeRepo.ErrPlaceNotFound
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var today = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func booking(id, userID, placeID int64, daysAgo int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    userID,
		PlaceID:   placeID,
		Date:      domain.DateOnly(today).AddDate(0, 0, -daysAgo),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Status:    status,
	}
}

func newService(bookings *stubBookings) *Service {
	return NewService(bookings, stubPlaces{1: {ID: 1}, 2: {ID: 2}}, time.UTC, logger.NewNop()).
		WithTimeProvider(fixedClock(today))
}

func TestGetByID_Visibility(t *testing.T) {
	svc := newService(&stubBookings{bookings: []*domain.Booking{booking(1, 10, 1, 0, domain.StatusPending)}})
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, domain.NewClient(10), 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)

	_, err = svc.GetByID(ctx, domain.NewManager(20, 1), 1)
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, domain.NewClient(11), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(ctx, domain.NewManager(20, 2), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(ctx, domain.NewClient(10), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMine_GroupsAllStatuses(t *testing.T) {
	svc := newService(&stubBookings{bookings: []*domain.Booking{
		booking(1, 10, 1, 0, domain.StatusPending),
		booking(2, 10, 1, 1, domain.StatusCompleted),
		booking(3, 11, 1, 0, domain.StatusPending),
	}})

	resp, err := svc.ListMine(context.Background(), domain.NewClient(10), &models.ListMyBookingsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Pending, 1)
	assert.Len(t, resp.Completed, 1)
	assert.NotNil(t, resp.Confirmed)
	assert.NotNil(t, resp.Cancelled)
	assert.Empty(t, resp.Cancelled)
}

func TestListMine_StatusFilter(t *testing.T) {
	stub := &stubBookings{}
	svc := newService(stub)

	_, err := svc.ListMine(context.Background(), domain.NewClient(10), &models.ListMyBookingsRequest{Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.NotNil(t, stub.lastStatus)
	assert.Equal(t, domain.StatusConfirmed, *stub.lastStatus)

	_, err = svc.ListMine(context.Background(), domain.NewClient(10), &models.ListMyBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, domain.ErrInputFormat)
}

func TestListPlaceBookings(t *testing.T) {
	stub := &stubBookings{bookings: []*domain.Booking{
		booking(1, 10, 1, 0, domain.StatusPending),
		booking(2, 11, 1, 0, domain.StatusCancelled),
		booking(3, 12, 2, 0, domain.StatusPending),
	}}
	svc := newService(stub)
	ctx := context.Background()

	resp, err := svc.ListPlaceBookings(ctx, domain.NewManager(20, 1), 1, today)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	require.NotNil(t, stub.lastActive)
	assert.False(t, *stub.lastActive)

	_, err = svc.ListPlaceBookings(ctx, domain.NewClient(10), 1, today)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.ListPlaceBookings(ctx, domain.NewManager(20, 9), 9, today)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserStats(t *testing.T) {
	svc := newService(&stubBookings{bookings: []*domain.Booking{
		booking(1, 10, 1, 2, domain.StatusCompleted),
		booking(2, 10, 2, 20, domain.StatusCompleted),
		booking(3, 10, 1, 100, domain.StatusCompleted),
		booking(4, 10, 1, 1, domain.StatusCancelled),
	}})
	ctx := context.Background()

	resp, err := svc.UserStats(ctx, domain.NewClient(10), &models.StatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalBookings)
	assert.Equal(t, 3, resp.TotalCompleted)
	assert.Equal(t, 2, resp.UniquePlacesVisited)
	assert.Equal(t, map[string]int{"week": 1, "month": 2, "year": 3}, resp.CompletedInPeriod)
	assert.Nil(t, resp.CompletedBetween)

	from := domain.DateOnly(today).AddDate(0, 0, -30)
	to := domain.DateOnly(today)
	resp, err = svc.UserStats(ctx, domain.NewClient(10), &models.StatsRequest{Period: "week", From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"week": 1}, resp.CompletedInPeriod)
	require.NotNil(t, resp.CompletedBetween)
	assert.Equal(t, 2, *resp.CompletedBetween)

	_, err = svc.UserStats(ctx, domain.NewClient(10), &models.StatsRequest{Period: "decade"})
	assert.ErrorIs(t, err, domain.ErrInputFormat)

	_, err = svc.UserStats(ctx, domain.NewClient(10), &models.StatsRequest{From: &from})
	assert.ErrorIs(t, err, domain.ErrInputFormat)
}
