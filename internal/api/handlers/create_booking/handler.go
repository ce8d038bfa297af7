package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondRejection(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("POST /bookings - Rejected: user_id=%d, place_id=%d, reason=%v",
				principal.UserID, req.PlaceID, err)
			return
		}
		h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, place_id=%d, error=%v",
			principal.UserID, req.PlaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, place_id=%d",
		result.ID, principal.UserID, req.PlaceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
