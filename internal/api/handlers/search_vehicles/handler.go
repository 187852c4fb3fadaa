package search_vehicles

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/vehicles"
)

const msgKeywordRequired = "параметр q обязателен"

type Handler struct {
	service VehiclesService
	logger  Logger
}

func NewHandler(service VehiclesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/search?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), keyword)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/search - Empty keyword")
			handlers.RespondBadRequest(w, msgKeywordRequired)
		default:
			h.logger.Error("GET /vehicles/search - Failed to search vehicles: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
