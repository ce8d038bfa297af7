package get_user_stats

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
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

// Handle GET /api/v1/me/stats
// Query params: period (week|month|year, optional), from и to (YYYY-MM-DD, только вместе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /me/stats - Invalid query: %v", err)
		handlers.RespondRejection(w, err)
		return
	}

	stats, err := h.service.UserStats(r.Context(), principal, req)
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /me/stats - Rejected: user_id=%d, reason=%v", principal.UserID, err)
			return
		}
		h.logger.Error("GET /me/stats - Failed to compute stats: user_id=%d, error=%v", principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/stats - Stats computed: user_id=%d, total=%d", principal.UserID, stats.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
