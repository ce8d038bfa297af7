package find_available_places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	findPlaces "github.com/m04kA/SMC-PlaceBooking/internal/usecase/find_available_places"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *findPlaces.Request) (*findPlaces.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*findPlaces.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	place := &domain.Place{
		ID: 1, Name: "Корт", Category: domain.CategoryArena,
		OpenTime: "08:00", CloseTime: "22:00", SlotDurationMinutes: 60, Capacity: 2,
	}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *findPlaces.Request) bool {
		return r.Date.Equal(date) && r.Time == "10:30"
	})).
		Return(&findPlaces.Response{
			Date: date, Time: "10:30",
			Places: []findPlaces.AvailablePlace{{Place: place, Booked: 1, Remaining: 1}},
		}, nil)

	w := serve(uc, "/api/v1/places/available?date=2025-06-01&time=10:30")

	require.Equal(t, http.StatusOK, w.Code)
	var resp AvailablePlacesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Places, 1)
	assert.Equal(t, int64(1), resp.Places[0].ID)
	assert.Equal(t, 1, resp.Places[0].AvailableSpots)
	uc.AssertExpectations(t)
}

func TestHandle_BadQuery(t *testing.T) {
	for _, target := range []string{
		"/api/v1/places/available",
		"/api/v1/places/available?date=2025-06-01",
		"/api/v1/places/available?date=2025-13-01&time=10:00",
		"/api/v1/places/available?date=2025-06-01&time=25:00",
	} {
		uc := &mockUseCase{}
		w := serve(uc, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}
