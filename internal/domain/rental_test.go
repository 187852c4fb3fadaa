package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day counts as one", day(2025, time.June, 10), day(2025, time.June, 10), 1},
		{"adjacent days count as two", day(2025, time.June, 10), day(2025, time.June, 11), 2},
		{"full week", day(2025, time.June, 2), day(2025, time.June, 8), 7},
		{"time of day is ignored", day(2025, time.June, 10).Add(23 * time.Hour), day(2025, time.June, 11), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(tt.start, tt.end))
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{
			name: "disjoint ranges do not overlap",
			s1:   day(2025, time.June, 10), e1: day(2025, time.June, 15),
			s2: day(2025, time.June, 16), e2: day(2025, time.June, 20),
			want: false,
		},
		{
			name: "shared boundary day overlaps",
			s1:   day(2025, time.June, 10), e1: day(2025, time.June, 15),
			s2: day(2025, time.June, 15), e2: day(2025, time.June, 20),
			want: true,
		},
		{
			name: "contained range overlaps",
			s1:   day(2025, time.June, 10), e1: day(2025, time.June, 20),
			s2: day(2025, time.June, 12), e2: day(2025, time.June, 14),
			want: true,
		},
		{
			name: "identical ranges overlap",
			s1:   day(2025, time.June, 10), e1: day(2025, time.June, 15),
			s2: day(2025, time.June, 10), e2: day(2025, time.June, 15),
			want: true,
		},
		{
			name: "first entirely after second",
			s1:   day(2025, time.June, 21), e1: day(2025, time.June, 25),
			s2: day(2025, time.June, 10), e2: day(2025, time.June, 20),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			// the predicate is symmetric
			assert.Equal(t, tt.want, RangesOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestRentalTransitions(t *testing.T) {
	active := &Rental{Status: StatusActive}
	assert.True(t, active.IsActive())
	assert.True(t, active.CanBeFinished())

	finished := &Rental{Status: StatusFinished}
	assert.False(t, finished.IsActive())
	assert.False(t, finished.CanBeFinished())
}

func TestIsValidVehicleClass(t *testing.T) {
	for _, c := range VehicleClasses {
		assert.True(t, IsValidVehicleClass(c))
	}
	assert.False(t, IsValidVehicleClass("Sedan"))
	assert.False(t, IsValidVehicleClass(""))
}
