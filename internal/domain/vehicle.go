package domain

import "time"

// VehicleClass represents the class of a vehicle
type VehicleClass string

const (
	ClassEconomy VehicleClass = "Economy"
	ClassSUV     VehicleClass = "SUV"
	ClassTruck   VehicleClass = "Truck"
)

// Vehicle represents a rentable vehicle in the fleet
type Vehicle struct {
	ID        int64
	Brand     string
	Model     string
	Year      int
	DailyRate float64
	Class     VehicleClass

	// Available is derived state: true iff the vehicle has no active rental.
	// Mutated only by the rental usecases together with rental status changes.
	Available bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidVehicleClass returns true if the class belongs to the closed set
func IsValidVehicleClass(c VehicleClass) bool {
	switch c {
	case ClassEconomy, ClassSUV, ClassTruck:
		return true
	default:
		return false
	}
}

// VehicleClasses lists all supported vehicle classes
var VehicleClasses = []VehicleClass{
	ClassEconomy,
	ClassSUV,
	ClassTruck,
}
