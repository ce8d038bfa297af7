package update_place

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
)

const (
	msgInvalidPlaceID     = "некорректный ID объекта"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PATCH /api/v1/places/{placeId}
// Меняет часы работы, длительность слота и вместимость. Только менеджер объекта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	placeID, err := handlers.PathID(r, "placeId")
	if err != nil {
		h.logger.Warn("PATCH /places/{id} - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	var req models.UpdatePlaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /places/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	place, err := h.service.UpdateSchedule(r.Context(), principal, placeID, &req)
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("PATCH /places/{id} - Rejected: place_id=%d, user_id=%d, reason=%v",
				placeID, principal.UserID, err)
			return
		}
		h.logger.Error("PATCH /places/{id} - Failed to update place: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /places/{id} - Place updated: place_id=%d, user_id=%d", placeID, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, place)
}
