package get_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

const (
	msgInvalidRentalID = "некорректный идентификатор аренды"
	msgRentalNotFound  = "аренда не найдена"
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

// Handle GET /api/v1/rentals/{rentalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rentals/{rentalId} - Invalid rental id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	rental, err := h.service.GetByID(r.Context(), rentalID)
	if err != nil {
		if errors.Is(err, rentalsService.ErrRentalNotFound) {
			h.logger.Warn("GET /rentals/%d - Rental not found", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)
			return
		}
		h.logger.Error("GET /rentals/%d - Failed to get rental: %v", rentalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rental)
}
