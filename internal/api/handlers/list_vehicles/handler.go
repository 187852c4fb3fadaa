package list_vehicles

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

const msgInvalidOnlyAvailable = "параметр onlyAvailable должен быть true или false"

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

// Handle GET /api/v1/vehicles?onlyAvailable=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := false

	if raw := r.URL.Query().Get("onlyAvailable"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /vehicles - Invalid onlyAvailable value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOnlyAvailable)
			return
		}
		onlyAvailable = parsed
	}

	result, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
