package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		name  string
		class domain.VehicleClass
		start time.Time
		end   time.Time
		want  Policy
	}{
		{
			name:  "weekday economy gets standard",
			class: domain.ClassEconomy,
			start: date(2025, time.June, 2), // Mon
			end:   date(2025, time.June, 5), // Thu
			want:  PolicyStandard,
		},
		{
			name:  "economy over a weekend gets weekend discount",
			class: domain.ClassEconomy,
			start: date(2025, time.June, 5), // Thu
			end:   date(2025, time.June, 8), // Sun
			want:  PolicyWeekendDiscount,
		},
		{
			name:  "suv on weekdays gets class premium",
			class: domain.ClassSUV,
			start: date(2025, time.June, 2),
			end:   date(2025, time.June, 5),
			want:  PolicyClassPremium,
		},
		{
			name:  "suv over a weekend still gets class premium",
			class: domain.ClassSUV,
			start: date(2025, time.June, 5),
			end:   date(2025, time.June, 8),
			want:  PolicyClassPremium,
		},
		{
			name:  "truck on weekdays gets standard",
			class: domain.ClassTruck,
			start: date(2025, time.June, 2),
			end:   date(2025, time.June, 4),
			want:  PolicyStandard,
		},
		{
			name:  "week-long range always spans a weekend",
			class: domain.ClassEconomy,
			start: date(2025, time.June, 2),
			end:   date(2025, time.June, 8),
			want:  PolicyWeekendDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Choose(tt.class, tt.start, tt.end))
		})
	}
}

func TestContainsWeekend(t *testing.T) {
	// single weekday
	assert.False(t, containsWeekend(date(2025, time.June, 3), date(2025, time.June, 3)))
	// single saturday
	assert.True(t, containsWeekend(date(2025, time.June, 7), date(2025, time.June, 7)))
	// mon..fri
	assert.False(t, containsWeekend(date(2025, time.June, 2), date(2025, time.June, 6)))
	// fri..sat crosses into the weekend
	assert.True(t, containsWeekend(date(2025, time.June, 6), date(2025, time.June, 7)))
}
