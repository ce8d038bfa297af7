package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PlaceBooking/pkg/ptr"
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

// Handle GET /api/v1/me/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var statusPtr *string
	if status := r.URL.Query().Get("status"); status != "" {
		statusPtr = ptr.Ptr(status)
	}

	result, err := h.service.ListMine(r.Context(), principal, &models.ListMyBookingsRequest{Status: statusPtr})
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /me/bookings - Rejected: user_id=%d, reason=%v", principal.UserID, err)
			return
		}
		h.logger.Error("GET /me/bookings - Failed to get bookings: user_id=%d, error=%v", principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		principal.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
