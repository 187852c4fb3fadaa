package complete_rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("complete_rental: rental not found")

	// ErrAlreadyFinished возвращается при попытке завершить уже завершённую аренду.
	// Повторное завершение - ошибка домена, а не no-op
	ErrAlreadyFinished = errors.New("complete_rental: rental is already finished")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_rental: internal error")
)
