package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/customers"
	"github.com/m04kA/SMC-RentalService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCustomer    = "некорректные данные клиента"
	msgDuplicateEmail     = "клиент с таким email уже зарегистрирован"
)

type Handler struct {
	service CustomersService
	logger  Logger
}

func NewHandler(service CustomersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrDuplicateEmail):
			h.logger.Warn("POST /customers - Duplicate email")
			handlers.RespondConflict(w, msgDuplicateEmail)
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)
		default:
			h.logger.Error("POST /customers - Failed to create customer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Successfully created customer id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
