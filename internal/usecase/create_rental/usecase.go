package create_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// UseCase use case создания аренды
type UseCase struct {
	customerRepo CustomerRepository
	vehicleRepo  VehicleRepository
	rentalRepo   RentalRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	vehicleRepo VehicleRepository,
	rentalRepo RentalRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		rentalRepo:   rentalRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания аренды.
//
// Проверка пересечения и фиксация аренды выполняются в одной сериализуемой
// транзакции: строка автомобиля блокируется FOR UPDATE на всё время проверки
// и вставки, поэтому два конкурентных запроса на один автомобиль не могут
// оба пройти проверку пересечения. Флаг доступности автомобиля — это кеш;
// источник истины — множество активных аренд
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRental: customer=%d, vehicle=%d, range=%s..%s",
		req.CustomerID, req.VehicleID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if isNotFound(err) {
			uc.logger.Warn("CreateRental: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateRental: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Проверяем существование автомобиля.
	// Отсутствие автомобиля диагностируется раньше некорректного диапазона дат;
	// внутри транзакции строка перечитывается повторно уже с блокировкой
	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if isNotFound(err) {
			uc.logger.Warn("CreateRental: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateRental: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Проверяем корректность диапазона дат
	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		uc.logger.Warn("CreateRental: invalid range: %v", err)
		return nil, err
	}

	var result *domain.Rental
	var appliedPolicy pricing.Policy

	// 5. Выполняем проверки и фиксацию в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем автомобиль с блокировкой строки (FOR UPDATE)
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if isNotFound(err) {
				uc.logger.Warn("CreateRental: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateRental: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}

		// 5.2. Быстрая проверка по флагу доступности
		if !vehicle.Available {
			uc.logger.Warn("CreateRental: vehicle id=%d is not available", req.VehicleID)
			return ErrVehicleUnavailable
		}

		// 5.3. Авторитетная проверка по множеству активных аренд.
		// Выполняется даже при available=true: флаг может разойтись
		// с множеством аренд, полагаться только на него нельзя
		overlaps, err := uc.rentalRepo.HasOverlappingActive(txCtx, req.VehicleID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateRental: overlap check failed for vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateRental: vehicle id=%d has overlapping active rental", req.VehicleID)
			return ErrRentalConflict
		}

		// 5.4. Выбираем ценовую политику и считаем стоимость
		appliedPolicy = pricing.Choose(vehicle.Class, req.StartDate, req.EndDate)
		totalCost := pricing.ComputeCost(appliedPolicy, vehicle.Class, req.StartDate, req.EndDate, vehicle.DailyRate)

		uc.logger.Info("CreateRental: policy=%s, days=%d, cost=%.2f",
			appliedPolicy, domain.RentalDays(req.StartDate, req.EndDate), totalCost)

		// 5.5. Создаем аренду и снимаем флаг доступности одной транзакцией
		rental := &domain.Rental{
			CustomerID: req.CustomerID,
			VehicleID:  req.VehicleID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalCost:  totalCost,
			Status:     domain.StatusActive,
		}

		created, err := uc.rentalRepo.Create(txCtx, rental)
		if err != nil {
			uc.logger.Error("CreateRental: failed to create rental: %v", err)
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		if err := uc.vehicleRepo.SetAvailability(txCtx, req.VehicleID, false); err != nil {
			uc.logger.Error("CreateRental: failed to update availability for vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to update vehicle availability: %v", ErrInternal, err)
		}

		uc.metrics.IncRentalsCreated(string(vehicle.Class))

		result = created
		return nil
	})

	if err != nil {
		// Исчерпаны повторы из-за конфликтов сериализации - операцию можно повторить
		if errors.Is(err, txmanager.ErrSerializationFailure) || errors.Is(err, simpletxmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateRental: transaction retries exhausted for vehicle id=%d: %v", req.VehicleID, err)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("CreateRental: successfully created rental id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		VehicleID:  result.VehicleID,
		StartDate:  result.StartDate,
		EndDate:    result.EndDate,
		Days:       result.RentalDays(),
		TotalCost:  result.TotalCost,
		Policy:     string(appliedPolicy),
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
