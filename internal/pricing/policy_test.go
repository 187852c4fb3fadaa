package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeCost_Standard(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		rate  float64
		want  float64
	}{
		{
			name:  "single day charges one full rate",
			start: date(2025, time.June, 3),
			end:   date(2025, time.June, 3),
			rate:  45.0,
			want:  45.00,
		},
		{
			name:  "three days economy",
			start: date(2025, time.June, 3),
			end:   date(2025, time.June, 5),
			rate:  45.0,
			want:  135.00,
		},
		{
			name:  "fractional rate rounds once at the end",
			start: date(2025, time.June, 2),
			end:   date(2025, time.June, 4),
			rate:  33.335,
			want:  100.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCost(PolicyStandard, domain.ClassEconomy, tt.start, tt.end, tt.rate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeCost_ClassPremium(t *testing.T) {
	// 3 days * 50.00 * 1.20 = 180.00
	got := ComputeCost(PolicyClassPremium, domain.ClassSUV,
		date(2025, time.June, 3), date(2025, time.June, 5), 50.0)
	assert.Equal(t, 180.00, got)

	// classes without a premium multiplier are charged at the base rate
	got = ComputeCost(PolicyClassPremium, domain.ClassTruck,
		date(2025, time.June, 3), date(2025, time.June, 5), 50.0)
	assert.Equal(t, 150.00, got)
}

func TestComputeCost_WeekendDiscount(t *testing.T) {
	// Mon 2025-06-02 .. Sun 2025-06-08: 5 weekdays * 100 + 2 weekend days * 90 = 680.00
	got := ComputeCost(PolicyWeekendDiscount, domain.ClassEconomy,
		date(2025, time.June, 2), date(2025, time.June, 8), 100.0)
	assert.Equal(t, 680.00, got)

	// weekend-only range: both days discounted
	got = ComputeCost(PolicyWeekendDiscount, domain.ClassEconomy,
		date(2025, time.June, 7), date(2025, time.June, 8), 100.0)
	assert.Equal(t, 180.00, got)
}

func TestComputeCost_InclusiveDays(t *testing.T) {
	// [start, end] counts both endpoints: 2 days, not 1
	got := ComputeCost(PolicyStandard, domain.ClassEconomy,
		date(2025, time.June, 3), date(2025, time.June, 4), 45.0)
	assert.Equal(t, 90.00, got)
}
