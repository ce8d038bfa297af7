package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-PlaceBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(h *Handler, body string, principal *domain.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *principal))
	}
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

const validBody = `{"placeId":1,"date":"2025-06-01","startTime":"10:00","endTime":"11:00"}`

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())
	client := domain.NewClient(7)
	now := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.UserID == 7 && r.PlaceID == 1 && r.StartTime == "10:00" && r.EndTime == "11:00" &&
			r.Date.Format(domain.DateFormat) == "2025-06-01"
	})).Return(&createBooking.Response{
		ID: 10, UserID: 7, PlaceID: 1,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00", EndTime: "11:00",
		Status:    string(domain.StatusPending),
		CreatedAt: now, UpdatedAt: now,
	}, nil)

	w := doRequest(h, validBody, &client)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-06-01", resp.BookingDate)
	assert.Equal(t, "pending", resp.Status)
	uc.AssertExpectations(t)
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &mockUseCase{}
	w := doRequest(NewHandler(uc, logger.NewNop()), validBody, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_BadInput(t *testing.T) {
	client := domain.NewClient(7)
	tests := []struct {
		name string
		body string
		code string
	}{
		{"broken json", `{"placeId":`, ""},
		{"unknown field", `{"placeId":1,"userId":5}`, ""},
		{"bad date", `{"placeId":1,"date":"01.06.2025","startTime":"10:00","endTime":"11:00"}`, "invalid_date"},
		{"bad time", `{"placeId":1,"date":"2025-06-01","startTime":"1000","endTime":"11:00"}`, "invalid_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := doRequest(NewHandler(uc, logger.NewNop()), tt.body, &client)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_Rejections(t *testing.T) {
	client := domain.NewClient(7)
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"capacity", domain.Reject(domain.ErrCapacityExceeded, domain.CodeCapacityExceeded, "нет мест"), http.StatusConflict, "capacity_exceeded"},
		{"off grid", domain.Reject(domain.ErrValidation, domain.CodeOffGrid, "не по сетке"), http.StatusUnprocessableEntity, "validation_failure"},
		{"no place", domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "нет объекта"), http.StatusNotFound, "not_found"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doRequest(NewHandler(uc, logger.NewNop()), validBody, &client)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.kind, decodeError(t, w).Kind)
		})
	}
}
