package create_customer

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/customers/models"
)

// CustomersService - сервис для регистрации клиентов
type CustomersService interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
