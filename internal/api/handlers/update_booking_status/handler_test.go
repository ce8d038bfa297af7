package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	updateStatus "github.com/m04kA/SMC-PlaceBooking/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *updateStatus.Request) (*updateStatus.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*updateStatus.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc *mockUseCase, path string, principal domain.Principal) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/{action}", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), principal))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandle_Confirm(t *testing.T) {
	uc := &mockUseCase{}
	manager := domain.NewManager(9, 1)
	uc.On("Execute", mock.Anything, &updateStatus.Request{
		Principal: manager, BookingID: 5, Event: domain.EventConfirm,
	}).Return(&updateStatus.Response{
		ID: 5, PlaceID: 1, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00", EndTime: "11:00",
		Status: "confirmed", PreviousStatus: "pending",
	}, nil)

	w := serve(uc, "/bookings/5/confirm", manager)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"previousStatus":"pending"`)
	uc.AssertExpectations(t)
}

func TestHandle_ExpireIsNotExposed(t *testing.T) {
	uc := &mockUseCase{}

	w := serve(uc, "/bookings/5/expire", domain.NewManager(9, 1))

	assert.Equal(t, http.StatusNotFound, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InvalidID(t *testing.T) {
	uc := &mockUseCase{}

	w := serve(uc, "/bookings/abc/cancel", domain.NewClient(7))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_Rejected(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, domain.Reject(domain.ErrPermissionDenied, domain.CodeNotOwner, "чужая бронь"))

	w := serve(uc, "/bookings/5/cancel", domain.NewClient(8))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"not_owner"`)
}
