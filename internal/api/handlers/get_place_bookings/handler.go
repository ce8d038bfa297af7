package get_place_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
)

const (
	msgInvalidPlaceID = "некорректный ID объекта"
	msgMissingDate    = "дата обязательна"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/bookings
// Query params: date (required, YYYY-MM-DD). Доступно только менеджеру объекта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	placeID, err := handlers.PathID(r, "placeId")
	if err != nil {
		h.logger.Warn("GET /places/{id}/bookings - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate("date", dateStr)
	if err != nil {
		h.logger.Warn("GET /places/{id}/bookings - Invalid date: %v", err)
		handlers.RespondRejection(w, err)
		return
	}

	result, err := h.service.ListPlaceBookings(r.Context(), principal, placeID, date)
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /places/{id}/bookings - Rejected: place_id=%d, user_id=%d, reason=%v",
				placeID, principal.UserID, err)
			return
		}
		h.logger.Error("GET /places/{id}/bookings - Failed to get bookings: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /places/{id}/bookings - Bookings retrieved successfully: place_id=%d, date=%s, count=%d",
		placeID, dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
