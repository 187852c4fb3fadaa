package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidClass возвращается при неизвестном классе автомобиля
	ErrInvalidClass = errors.New("invalid vehicle class")

	// ErrInvalidYear возвращается, когда год выпуска вне допустимого диапазона
	ErrInvalidYear = errors.New("year is out of valid range")

	// ErrInvalidRate возвращается при неположительной дневной ставке
	ErrInvalidRate = errors.New("daily rate must be positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles service: internal error")
)
