package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Policy identifies a pricing policy from the closed set of policies
type Policy string

const (
	// PolicyStandard charges the base daily rate for every day of the rental
	PolicyStandard Policy = "standard"

	// PolicyClassPremium charges the base daily rate with a per-class premium multiplier
	PolicyClassPremium Policy = "class_premium"

	// PolicyWeekendDiscount charges weekend days (Sat/Sun) at 90% of the base rate
	PolicyWeekendDiscount Policy = "weekend_discount"
)

// weekendDiscountMultiplier applied to the base rate on Saturdays and Sundays
var weekendDiscountMultiplier = decimal.NewFromFloat(0.9)

// classPremiumMultipliers premium multiplier per vehicle class.
// Classes without an entry are charged at the base rate.
var classPremiumMultipliers = map[domain.VehicleClass]decimal.Decimal{
	domain.ClassSUV: decimal.NewFromFloat(1.20),
}

// ComputeCost computes the total rental cost for the inclusive range
// [start, end] under the given policy. Both endpoints count as rental days.
// The result is rounded half-up to 2 decimal places exactly once, at the end;
// day-iterating policies never round per day.
func ComputeCost(policy Policy, class domain.VehicleClass, start, end time.Time, baseDailyRate float64) float64 {
	days := decimal.NewFromInt(int64(domain.RentalDays(start, end)))
	rate := decimal.NewFromFloat(baseDailyRate)

	var total decimal.Decimal

	switch policy {
	case PolicyClassPremium:
		total = days.Mul(rate).Mul(premiumMultiplier(class))

	case PolicyWeekendDiscount:
		discounted := rate.Mul(weekendDiscountMultiplier)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if isWeekend(d) {
				total = total.Add(discounted)
			} else {
				total = total.Add(rate)
			}
		}

	default:
		total = days.Mul(rate)
	}

	cost, _ := total.Round(2).Float64()
	return cost
}

// premiumMultiplier returns the premium multiplier for the vehicle class
func premiumMultiplier(class domain.VehicleClass) decimal.Decimal {
	if m, ok := classPremiumMultipliers[class]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// isWeekend reports whether the day falls on Saturday or Sunday
func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
