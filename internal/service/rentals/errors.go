package rentals

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("rental not found")

	// ErrInvalidStatus возвращается при неизвестном статусе аренды
	ErrInvalidStatus = errors.New("status must be 'active' or 'finished'")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rentals service: internal error")
)
