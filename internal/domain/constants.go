package domain

// Business validation constants
const (
	MinVehicleYear = 1980
	MaxNameLength  = 200
	MaxEmailLength = 320
	MaxPhoneLength = 32
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RentalsFilter фильтр для получения списка аренд
type RentalsFilter struct {
	CustomerID *int64        // Фильтр по клиенту (опционально)
	VehicleID  *int64        // Фильтр по автомобилю (опционально)
	Status     *RentalStatus // Фильтр по статусу (опционально, если nil - все аренды)
}
