package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-PlaceBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidPlaceID = "некорректный ID объекта"
	msgMissingDate    = "дата обязательна"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := handlers.PathID(r, "placeId")
	if err != nil {
		h.logger.Warn("GET /places/{id}/available-slots - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /places/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate("date", dateStr)
	if err != nil {
		h.logger.Warn("GET /places/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondRejection(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{PlaceID: placeID, Date: date})
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /places/{id}/available-slots - Rejected: place_id=%d, reason=%v", placeID, err)
			return
		}
		h.logger.Error("GET /places/{id}/available-slots - Failed to get slots: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /places/{id}/available-slots - Slots retrieved successfully: place_id=%d, date=%s, slots_count=%d",
		placeID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
