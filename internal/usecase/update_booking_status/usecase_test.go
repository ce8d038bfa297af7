package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PlaceBooking/pkg/keylock"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
	"github.com/m04kA/SMC-PlaceBooking/pkg/metrics"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetByPlaceAndDate(ctx context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	args := m.Called(ctx, placeID, date, activeOnly)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) LockPlaceDate(ctx context.Context, placeID int64, date time.Time) error {
	return m.Called(ctx, placeID, date).Error(0)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, from, to)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type mockPlaceRepo struct {
	mock.Mock
}

func (m *mockPlaceRepo) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Place)
	return p, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const (
	ownerID   int64 = 10
	managerID int64 = 20
	placeID   int64 = 1
)

var bookingDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

func testPlace() *domain.Place {
	return &domain.Place{
		ID:                  placeID,
		Name:                "Арена",
		Category:            domain.CategoryArena,
		OpenTime:            "08:00",
		CloseTime:           "22:00",
		SlotDurationMinutes: 60,
		Capacity:            1,
	}
}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    ownerID,
		PlaceID:   placeID,
		Date:      bookingDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    status,
	}
}

func withStatus(b *domain.Booking, status domain.BookingStatus) *domain.Booking {
	c := *b
	c.Status = status
	return &c
}

func newUseCase(bookings *mockBookingRepo, places *mockPlaceRepo) *UseCase {
	return NewUseCase(bookings, places, inlineTx{}, keylock.New(), (*metrics.Metrics)(nil), logger.NewNop())
}

func expectLoad(bookings *mockBookingRepo, b *domain.Booking) {
	bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	bookings.On("LockPlaceDate", mock.Anything, b.PlaceID, b.Date).Return(nil)
}

func requireKind(t *testing.T, err error, kind error, code domain.RejectionCode) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	rejection, ok := domain.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, code, rejection.Code)
}

func TestExecute_ConfirmPendingRevalidates(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	b := testBooking(5, domain.StatusPending)
	expectLoad(bookings, b)
	places.On("GetByID", mock.Anything, placeID).Return(testPlace(), nil)
	bookings.On("GetByPlaceAndDate", mock.Anything, placeID, bookingDate, true).Return([]*domain.Booking{b}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusPending, domain.StatusConfirmed).
		Return(withStatus(b, domain.StatusConfirmed), nil)

	resp, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewManager(managerID, placeID),
		BookingID: 5,
		Event:     domain.EventConfirm,
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "pending", resp.PreviousStatus)
	bookings.AssertExpectations(t)
	places.AssertExpectations(t)
}

func TestExecute_ConfirmRejectedWhenPlaceFull(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	b := testBooking(5, domain.StatusPending)
	other := testBooking(6, domain.StatusConfirmed)
	other.UserID = 11
	expectLoad(bookings, b)
	places.On("GetByID", mock.Anything, placeID).Return(testPlace(), nil)
	bookings.On("GetByPlaceAndDate", mock.Anything, placeID, bookingDate, true).Return([]*domain.Booking{b, other}, nil)

	_, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewManager(managerID, placeID),
		BookingID: 5,
		Event:     domain.EventConfirm,
	})

	requireKind(t, err, domain.ErrCapacityExceeded, domain.CodeCapacityExceeded)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ConfirmCancelledIsIllegal(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	expectLoad(bookings, testBooking(5, domain.StatusCancelled))

	_, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewManager(managerID, placeID),
		BookingID: 5,
		Event:     domain.EventConfirm,
	})

	requireKind(t, err, domain.ErrIllegalTransition, domain.CodeIllegalTransition)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	places.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExecute_CancelByNonOwnerIsDenied(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	expectLoad(bookings, testBooking(5, domain.StatusPending))

	_, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewClient(99),
		BookingID: 5,
		Event:     domain.EventCancel,
	})

	requireKind(t, err, domain.ErrPermissionDenied, domain.CodeNotOwner)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ClientCannotComplete(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	expectLoad(bookings, testBooking(5, domain.StatusConfirmed))

	_, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewClient(ownerID),
		BookingID: 5,
		Event:     domain.EventComplete,
	})

	requireKind(t, err, domain.ErrPermissionDenied, domain.CodeNotManager)
}

func TestExecute_CancelByOwnerSkipsValidation(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	b := testBooking(5, domain.StatusConfirmed)
	expectLoad(bookings, b)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusConfirmed, domain.StatusCancelled).
		Return(withStatus(b, domain.StatusCancelled), nil)

	resp, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewClient(ownerID),
		BookingID: 5,
		Event:     domain.EventCancel,
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	places.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "GetByPlaceAndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	bookings.On("GetByID", mock.Anything, int64(404)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewClient(ownerID),
		BookingID: 404,
		Event:     domain.EventCancel,
	})

	requireKind(t, err, domain.ErrNotFound, domain.CodeBookingNotFound)
}

func TestExecute_ConcurrentStatusChangeIsIllegal(t *testing.T) {
	bookings, places := &mockBookingRepo{}, &mockPlaceRepo{}
	b := testBooking(5, domain.StatusConfirmed)
	expectLoad(bookings, b)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusConfirmed, domain.StatusCompleted).
		Return(nil, bookingRepo.ErrStatusConflict)

	_, err := newUseCase(bookings, places).Execute(context.Background(), &Request{
		Principal: domain.NewManager(managerID, placeID),
		BookingID: 5,
		Event:     domain.EventComplete,
	})

	requireKind(t, err, domain.ErrIllegalTransition, domain.CodeIllegalTransition)
}
