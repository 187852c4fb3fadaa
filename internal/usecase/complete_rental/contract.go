package complete_rental

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
// Внутри транзакции GetByID блокирует строку аренды (FOR UPDATE),
// исключая двойное завершение при конкурентных запросах
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Finish(ctx context.Context, id int64) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	IncRentalsFinished()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopMetrics заглушка MetricsRecorder, когда метрики выключены
type NopMetrics struct{}

// IncRentalsFinished ничего не делает
func (NopMetrics) IncRentalsFinished() {}
