package create_rental

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCustomerNotFound   = "клиент не найден"
	msgVehicleNotFound    = "автомобиль не найден"
	msgInvalidRange       = "дата начала аренды позже даты окончания"
	msgVehicleUnavailable = "автомобиль недоступен для аренды"
	msgRentalConflict     = "у автомобиля уже есть активная аренда на пересекающиеся даты"
	msgBusy               = "сервис временно занят, повторите запрос"
)

type Handler struct {
	useCase CreateRentalUseCase
	logger  Logger
}

func NewHandler(useCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rentals - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRental.ErrCustomerNotFound):
			h.logger.Warn("POST /rentals - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createRental.ErrVehicleNotFound):
			h.logger.Warn("POST /rentals - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createRental.ErrInvalidRange):
			h.logger.Warn("POST /rentals - Invalid range: customer_id=%d, vehicle_id=%d", req.CustomerID, req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createRental.ErrVehicleUnavailable):
			h.logger.Warn("POST /rentals - Vehicle unavailable: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgVehicleUnavailable)

		case errors.Is(err, createRental.ErrRentalConflict):
			h.logger.Warn("POST /rentals - Overlapping rental: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgRentalConflict)

		case errors.Is(err, createRental.ErrBusy):
			h.logger.Warn("POST /rentals - Storage busy: vehicle_id=%d", req.VehicleID)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("POST /rentals - Failed to create rental: customer_id=%d, vehicle_id=%d, error=%v",
				req.CustomerID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals - Rental created successfully: rental_id=%d, customer_id=%d, vehicle_id=%d",
		result.ID, req.CustomerID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
