package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
	"github.com/m04kA/SMC-RentalService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClass       = "неизвестный класс автомобиля, допустимы: Economy, SUV, Truck"
	msgInvalidYear        = "год выпуска вне допустимого диапазона"
	msgInvalidRate        = "дневная ставка должна быть положительной"
)

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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vehiclesService.ErrInvalidClass):
			h.logger.Warn("POST /vehicles - Invalid class: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClass)

		case errors.Is(err, vehiclesService.ErrInvalidYear):
			h.logger.Warn("POST /vehicles - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, vehiclesService.ErrInvalidRate):
			h.logger.Warn("POST /vehicles - Invalid rate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRate)

		case errors.Is(err, vehiclesService.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
