package rentals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type fakeRentalRepo struct {
	rentals []*domain.Rental
}

func (r *fakeRentalRepo) GetByID(_ context.Context, id int64) (*domain.Rental, error) {
	for _, rental := range r.rentals {
		if rental.ID == id {
			return rental, nil
		}
	}
	return nil, rentalRepo.ErrRentalNotFound
}

func (r *fakeRentalRepo) List(_ context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	var out []*domain.Rental
	for _, rental := range r.rentals {
		if filter.CustomerID != nil && rental.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.VehicleID != nil && rental.VehicleID != *filter.VehicleID {
			continue
		}
		if filter.Status != nil && rental.Status != *filter.Status {
			continue
		}
		out = append(out, rental)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seededRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: []*domain.Rental{
		{ID: 1, CustomerID: 1, VehicleID: 10, StartDate: day(2025, time.June, 3), EndDate: day(2025, time.June, 5), TotalCost: 135.00, Status: domain.StatusActive},
		{ID: 2, CustomerID: 1, VehicleID: 20, StartDate: day(2025, time.May, 1), EndDate: day(2025, time.May, 3), TotalCost: 180.00, Status: domain.StatusFinished},
		{ID: 3, CustomerID: 2, VehicleID: 10, StartDate: day(2025, time.April, 1), EndDate: day(2025, time.April, 2), TotalCost: 90.00, Status: domain.StatusFinished},
	}}
}

func TestGetByID(t *testing.T) {
	svc := NewService(seededRepo(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-06-03", resp.StartDate)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "active", resp.Status)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestList_Filters(t *testing.T) {
	svc := NewService(seededRepo(), nopLogger{})

	tests := []struct {
		name    string
		req     *models.ListRentalsRequest
		wantIDs []int64
	}{
		{"no filter returns all", &models.ListRentalsRequest{}, []int64{1, 2, 3}},
		{"by customer", &models.ListRentalsRequest{CustomerID: ptr.Ptr(int64(1))}, []int64{1, 2}},
		{"by vehicle", &models.ListRentalsRequest{VehicleID: ptr.Ptr(int64(10))}, []int64{1, 3}},
		{"by status", &models.ListRentalsRequest{Status: ptr.Ptr("finished")}, []int64{2, 3}},
		{
			"customer and status combined",
			&models.ListRentalsRequest{CustomerID: ptr.Ptr(int64(1)), Status: ptr.Ptr("active")},
			[]int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(context.Background(), tt.req)
			require.NoError(t, err)

			got := make([]int64, 0, len(resp.Rentals))
			for _, r := range resp.Rentals {
				got = append(got, r.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, got)
		})
	}
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(seededRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRentalsRequest{Status: ptr.Ptr("cancelled")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
