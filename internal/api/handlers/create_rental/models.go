package create_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

// CreateRentalRequest HTTP request model
type CreateRentalRequest struct {
	CustomerID int64  `json:"customerId"`
	VehicleID  int64  `json:"vehicleId"`
	StartDate  string `json:"startDate"` // "2025-10-15"
	EndDate    string `json:"endDate"`   // "2025-10-18"
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	VehicleID  int64   `json:"vehicleId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Days       int     `json:"days"`
	TotalCost  float64 `json:"totalCost"`
	Policy     string  `json:"policy"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRentalRequest) ToUseCaseRequest() (*createRental.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createRental.Request{
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRental.Response) *RentalResponse {
	return &RentalResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		VehicleID:  resp.VehicleID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Days:       resp.Days,
		TotalCost:  resp.TotalCost,
		Policy:     resp.Policy,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
