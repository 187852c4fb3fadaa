package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid rental status")
)

// Request модели

// ListRentalsRequest запрос на получение списка аренд
type ListRentalsRequest struct {
	CustomerID *int64  `json:"customerId,omitempty"` // Фильтр по клиенту (опционально)
	VehicleID  *int64  `json:"vehicleId,omitempty"`  // Фильтр по автомобилю (опционально)
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRentalsRequest) ToDomainFilter() (domain.RentalsFilter, error) {
	filter := domain.RentalsFilter{
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
	}

	if r.Status != nil {
		status, err := ToDomainRentalStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// RentalResponse ответ с данными аренды
type RentalResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	VehicleID  int64     `json:"vehicleId"`
	StartDate  string    `json:"startDate"` // "2025-10-15"
	EndDate    string    `json:"endDate"`   // "2025-10-18"
	Days       int       `json:"days"`
	TotalCost  float64   `json:"totalCost"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RentalListResponse ответ со списком аренд
type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// FromDomainRental конвертирует domain модель в DTO
func FromDomainRental(r *domain.Rental) *RentalResponse {
	if r == nil {
		return nil
	}

	return &RentalResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		StartDate:  r.StartDate.Format(domain.DateFormat),
		EndDate:    r.EndDate.Format(domain.DateFormat),
		Days:       r.RentalDays(),
		TotalCost:  r.TotalCost,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainRentalList конвертирует список domain моделей в DTO
func FromDomainRentalList(rentals []*domain.Rental) *RentalListResponse {
	resp := &RentalListResponse{
		Rentals: make([]RentalResponse, 0, len(rentals)),
	}

	for _, rental := range rentals {
		if rentalResp := FromDomainRental(rental); rentalResp != nil {
			resp.Rentals = append(resp.Rentals, *rentalResp)
		}
	}

	return resp
}

// ToDomainRentalStatus конвертирует строку в domain.RentalStatus с валидацией
func ToDomainRentalStatus(status string) (domain.RentalStatus, error) {
	s := domain.RentalStatus(status)
	if !domain.IsValidRentalStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
