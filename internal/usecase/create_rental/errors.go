package create_rental

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_rental: customer not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_rental: vehicle not found")

	// ErrInvalidRange возвращается, когда дата начала позже даты окончания
	ErrInvalidRange = errors.New("create_rental: start date is after end date")

	// ErrVehicleUnavailable возвращается, когда автомобиль недоступен на момент запроса
	ErrVehicleUnavailable = errors.New("create_rental: vehicle is currently not available")

	// ErrRentalConflict возвращается, когда у автомобиля есть активная аренда
	// с пересекающимся диапазоном дат (включая проигрыш гонки конкурентному запросу)
	ErrRentalConflict = errors.New("create_rental: vehicle already has an overlapping active rental")

	// ErrBusy возвращается при исчерпании повторов транзакции из-за конфликтов.
	// Операцию можно повторить
	ErrBusy = errors.New("create_rental: storage is busy, retry the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_rental: internal error")
)
