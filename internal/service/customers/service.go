package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-RentalService/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create регистрирует нового клиента
// Поля обрезаются от пробелов, email приводится к нижнему регистру
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	if err := validateCustomer(name, email, phone); err != nil {
		s.logger.Warn("Create: customer validation failed: %v", err)
		return nil, err
	}

	customer := &domain.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already registered", email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// List получает список всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

// validateCustomer проверяет обязательные поля клиента
func validateCustomer(name, email, phone string) error {
	if name == "" || email == "" || phone == "" {
		return fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	return nil
}
