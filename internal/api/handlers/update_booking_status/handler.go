package update_booking_status

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	updateStatus "github.com/m04kA/SMC-PlaceBooking/internal/usecase/update_booking_status"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgUnknownAction    = "неизвестное действие"
)

type Handler struct {
	useCase UpdateBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/{action}
// action: confirm, complete или cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/{action} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	event, err := domain.ParseBookingEvent(mux.Vars(r)["action"])
	if err != nil || event == domain.EventExpire {
		h.logger.Warn("PATCH /bookings/{id}/{action} - Unknown action: %q", mux.Vars(r)["action"])
		handlers.RespondNotFound(w, msgUnknownAction)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		Principal: principal,
		BookingID: bookingID,
		Event:     event,
	})
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("PATCH /bookings/{id}/%s - Rejected: booking_id=%d, user_id=%d, reason=%v",
				event, bookingID, principal.UserID, err)
			return
		}
		h.logger.Error("PATCH /bookings/{id}/%s - Failed to update status: booking_id=%d, error=%v",
			event, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/%s - Status updated: booking_id=%d, %s -> %s",
		event, bookingID, result.PreviousStatus, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
