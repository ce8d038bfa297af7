package list_places

import (
	"net/http"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
	"github.com/m04kA/SMC-PlaceBooking/pkg/ptr"
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

// Handle GET /api/v1/places
// Query params: category (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = ptr.Ptr(c)
	}

	result, err := h.service.List(r.Context(), &models.ListPlacesRequest{Category: category})
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("GET /places - Rejected: reason=%v", err)
			return
		}
		h.logger.Error("GET /places - Failed to list places: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /places - Places listed: category=%s, count=%d", ptr.Deref(category, "all"), len(result.Places))
	handlers.RespondJSON(w, http.StatusOK, result)
}
