package list_customers

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/customers/models"
)

// CustomersService - сервис для получения списка клиентов
type CustomersService interface {
	List(ctx context.Context) (*models.CustomerListResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
