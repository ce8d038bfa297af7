package get_place

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
)

const (
	msgInvalidPlaceID = "некорректный ID объекта"
)

type Handler struct {
	service PlaceService
	logger  Logger
}

func NewHandler(service PlaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := handlers.PathID(r, "placeId")
	if err != nil {
		h.logger.Warn("GET /places/{id} - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	place, err := h.service.GetByID(r.Context(), placeID)
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /places/{id} - Rejected: place_id=%d, reason=%v", placeID, err)
			return
		}
		h.logger.Error("GET /places/{id} - Failed to get place: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, place)
}
