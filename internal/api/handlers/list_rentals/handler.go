package list_rentals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidStatus     = "статус должен быть 'active' или 'finished'"
	msgInvalidCustomerID = "некорректный идентификатор клиента"
	msgInvalidVehicleID  = "некорректный идентификатор автомобиля"
)

type Handler struct {
	service RentalsService
	logger  Logger
}

func NewHandler(service RentalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals?status=&customerId=&vehicleId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRentalsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("customerId"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /rentals - Invalid customer id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		req.CustomerID = &customerID
	}

	if raw := query.Get("vehicleId"); raw != "" {
		vehicleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /rentals - Invalid vehicle id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVehicleID)
			return
		}
		req.VehicleID = &vehicleID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, rentalsService.ErrInvalidStatus) {
			h.logger.Warn("GET /rentals - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /rentals - Failed to list rentals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
