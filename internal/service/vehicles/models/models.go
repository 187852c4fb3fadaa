package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на добавление автомобиля
type CreateVehicleRequest struct {
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	DailyRate float64 `json:"dailyRate"`
	Class     string  `json:"class"`
}

// Response модели

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID        int64     `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	DailyRate float64   `json:"dailyRate"`
	Class     string    `json:"class"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehicleListResponse ответ со списком автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:        v.ID,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		DailyRate: v.DailyRate,
		Class:     string(v.Class),
		Available: v.Available,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}

	for _, vehicle := range vehicles {
		if vehicleResp := FromDomainVehicle(vehicle); vehicleResp != nil {
			resp.Vehicles = append(resp.Vehicles, *vehicleResp)
		}
	}

	return resp
}
