package pricing

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Choose selects the pricing policy for a rental. First match wins:
//  1. SUV class -> PolicyClassPremium
//  2. Range [start, end] contains a Saturday or Sunday -> PolicyWeekendDiscount
//  3. Otherwise -> PolicyStandard
//
// An SUV rental spanning a weekend still gets the premium policy, not the
// weekend discount. This precedence is a product decision; do not reorder.
func Choose(class domain.VehicleClass, start, end time.Time) Policy {
	if class == domain.ClassSUV {
		return PolicyClassPremium
	}
	if containsWeekend(start, end) {
		return PolicyWeekendDiscount
	}
	return PolicyStandard
}

// containsWeekend reports whether the inclusive range [start, end]
// contains at least one Saturday or Sunday.
// A range of 7 or more days always spans a weekend; shorter ranges are scanned.
func containsWeekend(start, end time.Time) bool {
	if domain.RentalDays(start, end) >= 7 {
		return true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			return true
		}
	}
	return false
}
