package vehicles

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/vehicles/models"
)

// Service сервис для работы с автомобилями
type Service struct {
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create добавляет новый автомобиль в парк
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	brand := strings.TrimSpace(req.Brand)
	model := strings.TrimSpace(req.Model)
	class := domain.VehicleClass(strings.TrimSpace(req.Class))

	if err := s.validateVehicle(brand, model, req.Year, req.DailyRate, class); err != nil {
		s.logger.Warn("Create: vehicle validation failed: %v", err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		Brand:     brand,
		Model:     model,
		Year:      req.Year,
		DailyRate: req.DailyRate,
		Class:     class,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created vehicle id=%d (%s %s, class=%s)",
		created.ID, created.Brand, created.Model, created.Class)
	return models.FromDomainVehicle(created), nil
}

// List получает список автомобилей
// Если onlyAvailable = true, возвращает только доступные для аренды
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d vehicles (onlyAvailable=%t)", len(vehicles), onlyAvailable)
	return models.FromDomainVehicleList(vehicles), nil
}

// Search ищет автомобили по бренду, модели или классу
func (s *Service) Search(ctx context.Context, keyword string) (*models.VehicleListResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		s.logger.Warn("Search: empty keyword")
		return nil, fmt.Errorf("%w: keyword is required", ErrInvalidInput)
	}

	vehicles, err := s.vehicleRepo.Search(ctx, keyword)
	if err != nil {
		s.logger.Error("Search: repository error for keyword=%q: %v", keyword, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d vehicles for keyword=%q", len(vehicles), keyword)
	return models.FromDomainVehicleList(vehicles), nil
}

// validateVehicle проверяет поля автомобиля
// Год выпуска ограничен диапазоном [1980, текущий год + 1]
func (s *Service) validateVehicle(brand, model string, year int, dailyRate float64, class domain.VehicleClass) error {
	if brand == "" || model == "" || class == "" {
		return fmt.Errorf("%w: brand, model and class are required", ErrInvalidInput)
	}
	if !domain.IsValidVehicleClass(class) {
		return fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}
	if year < domain.MinVehicleYear || year > s.timeProvider.Now().Year()+1 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if dailyRate <= 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidRate, dailyRate)
	}
	return nil
}
