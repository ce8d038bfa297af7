package find_available_places

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	findPlaces "github.com/m04kA/SMC-PlaceBooking/internal/usecase/find_available_places"
)

const (
	msgMissingParams = "параметры date и time обязательны"
)

type Handler struct {
	useCase FindAvailablePlacesUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailablePlacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/available
// Query params: date (YYYY-MM-DD), time (HH:MM), оба обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dateStr, timeStr := query.Get("date"), query.Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /places/available - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := handlers.ParseDate("date", dateStr)
	if err != nil {
		handlers.RespondRejection(w, err)
		return
	}
	at, err := handlers.ParseTime("time", timeStr)
	if err != nil {
		handlers.RespondRejection(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &findPlaces.Request{Date: date, Time: at})
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /places/available - Rejected: reason=%v", err)
			return
		}
		h.logger.Error("GET /places/available - Failed to find places: date=%s, time=%s, error=%v", dateStr, timeStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /places/available - Places found: date=%s, time=%s, count=%d", dateStr, timeStr, len(result.Places))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
