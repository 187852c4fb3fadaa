package create_rental

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

type fakeUseCase struct {
	resp *createRental.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createRental.Request) (*createRental.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateRentalUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createRental.Response{
		ID:         1,
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		Days:       3,
		TotalCost:  135.00,
		Policy:     "standard",
		Status:     "active",
	}}

	rec := doRequest(t, uc, `{"customerId":1,"vehicleId":10,"startDate":"2025-06-03","endDate":"2025-06-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp RentalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 135.00, resp.TotalCost)
	assert.Equal(t, "2025-06-03", resp.StartDate)
	assert.Equal(t, "standard", resp.Policy)
}

func TestHandle_ErrorMapping(t *testing.T) {
	validBody := `{"customerId":1,"vehicleId":10,"startDate":"2025-06-03","endDate":"2025-06-05"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"customer not found", createRental.ErrCustomerNotFound, http.StatusNotFound},
		{"vehicle not found", createRental.ErrVehicleNotFound, http.StatusNotFound},
		{"invalid range", createRental.ErrInvalidRange, http.StatusBadRequest},
		{"vehicle unavailable", createRental.ErrVehicleUnavailable, http.StatusConflict},
		{"rental conflict", createRental.ErrRentalConflict, http.StatusConflict},
		{"storage busy", createRental.ErrBusy, http.StatusServiceUnavailable},
		{"internal error", createRental.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &fakeUseCase{}

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"customerId":`},
		{"unknown field", `{"customerId":1,"vehicleId":10,"startDate":"2025-06-03","endDate":"2025-06-05","extra":true}`},
		{"bad date format", `{"customerId":1,"vehicleId":10,"startDate":"03/06/2025","endDate":"2025-06-05"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, uc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
