package domain

import "time"

// RentalStatus represents the status of a rental
type RentalStatus string

const (
	StatusActive   RentalStatus = "active"
	StatusFinished RentalStatus = "finished"
)

// Rental represents a committed vehicle rental.
// A rental is created only through the create_rental usecase and moves
// active -> finished exactly once; rentals are never deleted.
type Rental struct {
	ID         int64
	CustomerID int64
	VehicleID  int64
	StartDate  time.Time // calendar date, inclusive
	EndDate    time.Time // calendar date, inclusive
	TotalCost  float64
	Status     RentalStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the rental currently occupies its vehicle
func (r *Rental) IsActive() bool {
	return r.Status == StatusActive
}

// CanBeFinished returns true if the rental may transition to finished
func (r *Rental) CanBeFinished() bool {
	return r.Status == StatusActive
}

// RentalDays returns the number of calendar days the rental spans.
// Both endpoints are inclusive, so a same-day rental counts as 1 day.
func (r *Rental) RentalDays() int {
	return RentalDays(r.StartDate, r.EndDate)
}

// RentalDays returns the inclusive day count of the range [start, end]
func RentalDays(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
}

// RangesOverlap reports whether two inclusive date ranges share at least
// one calendar day: NOT (e1 < s2 OR s1 > e2). A shared boundary day counts
// as overlap since end dates are inclusive.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !(dateOnly(e1).Before(dateOnly(s2)) || dateOnly(s1).After(dateOnly(e2)))
}

// IsValidRentalStatus returns true if the status belongs to the closed set
func IsValidRentalStatus(s RentalStatus) bool {
	return s == StatusActive || s == StatusFinished
}

// dateOnly strips the time-of-day component, keeping the calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
