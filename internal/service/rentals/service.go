package rentals

import (
	"context"
	"errors"
	"fmt"

	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Service сервис read-операций над арендами
// Создание и завершение аренды живут в отдельных usecase'ах,
// так как требуют транзакционной согласованности с флагом доступности автомобиля
type Service struct {
	rentalRepo RentalRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса аренд
func NewService(rentalRepo RentalRepository, logger Logger) *Service {
	return &Service{
		rentalRepo: rentalRepo,
		logger:     logger,
	}
}

// GetByID получает аренду по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RentalResponse, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("GetByID: rental id=%d not found", id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("GetByID: repository error for rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched rental id=%d", id)
	return models.FromDomainRental(rental), nil
}

// List получает список аренд с фильтрацией по клиенту, автомобилю и статусу
func (s *Service) List(ctx context.Context, req *models.ListRentalsRequest) (*models.RentalListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	rentals, err := s.rentalRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rentals", len(rentals))
	return models.FromDomainRentalList(rentals), nil
}
