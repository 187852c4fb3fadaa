package complete_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	completeRental "github.com/m04kA/SMC-RentalService/internal/usecase/complete_rental"
)

const (
	msgInvalidRentalID = "некорректный идентификатор аренды"
	msgRentalNotFound  = "аренда не найдена"
	msgAlreadyFinished = "аренда уже завершена"
)

type Handler struct {
	useCase CompleteRentalUseCase
	logger  Logger
}

func NewHandler(useCase CompleteRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{rentalId}/complete - Invalid rental id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	if err := h.useCase.Execute(r.Context(), rentalID); err != nil {
		switch {
		case errors.Is(err, completeRental.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/%d/complete - Rental not found", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)

		case errors.Is(err, completeRental.ErrAlreadyFinished):
			h.logger.Warn("PATCH /rentals/%d/complete - Already finished", rentalID)
			handlers.RespondConflict(w, msgAlreadyFinished)

		case errors.Is(err, completeRental.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/%d/complete - Invalid input: %v", rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidRentalID)

		default:
			h.logger.Error("PATCH /rentals/%d/complete - Failed to complete rental: %v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/%d/complete - Rental completed successfully", rentalID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
