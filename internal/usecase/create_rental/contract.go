package create_rental

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// VehicleRepository интерфейс репозитория автомобилей
// Внутри транзакции GetByID блокирует строку автомобиля (FOR UPDATE),
// сериализуя конкурентные создания аренды по одному автомобилю
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	HasOverlappingActive(ctx context.Context, vehicleID int64, startDate, endDate time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	IncRentalsCreated(vehicleClass string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopMetrics заглушка MetricsRecorder, когда метрики выключены
type NopMetrics struct{}

// IncRentalsCreated ничего не делает
func (NopMetrics) IncRentalsCreated(string) {}
