package search_vehicles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/vehicles/models"
)

// VehiclesService - сервис для поиска транспортных средств
type VehiclesService interface {
	Search(ctx context.Context, keyword string) (*models.VehicleListResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
