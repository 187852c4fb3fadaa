package create_rental

import (
	"errors"
	"fmt"
	"time"

	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	return nil
}

// validateRange проверяет, что дата начала не позже даты окончания
// Обе даты включительные: аренда на один день (start == end) корректна
func validateRange(start, end time.Time) error {
	if dateAfter(start, end) {
		return ErrInvalidRange
	}
	return nil
}

// dateAfter сравнивает только календарные даты, без времени суток
func dateAfter(a, b time.Time) bool {
	aOnly := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bOnly := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return aOnly.After(bOnly)
}

// isNotFound проверяет, что ошибка репозитория означает отсутствие записи
func isNotFound(err error) bool {
	return errors.Is(err, customerRepo.ErrCustomerNotFound) ||
		errors.Is(err, vehicleRepo.ErrVehicleNotFound)
}
