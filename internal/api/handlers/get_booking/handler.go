package get_booking

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Чужое бронирование неотличимо от несуществующего
	booking, err := h.service.GetByID(r.Context(), principal, bookingID)
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /bookings/{id} - Rejected: booking_id=%d, user_id=%d, reason=%v",
				bookingID, principal.UserID, err)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d, user_id=%d",
		bookingID, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
