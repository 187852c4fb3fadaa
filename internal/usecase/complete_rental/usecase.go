package complete_rental

import (
	"context"
	"errors"
	"fmt"

	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
)

// UseCase use case завершения аренды (возврат автомобиля)
type UseCase struct {
	rentalRepo  RentalRepository
	vehicleRepo VehicleRepository
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute завершает аренду: переводит её в статус finished и возвращает
// автомобилю флаг доступности. Оба изменения фиксируются одной транзакцией:
// либо видны оба, либо ни одно
func (uc *UseCase) Execute(ctx context.Context, rentalID int64) error {
	uc.logger.Info("CompleteRental: rental=%d", rentalID)

	if rentalID <= 0 {
		uc.logger.Warn("CompleteRental: invalid rental id=%d", rentalID)
		return fmt.Errorf("%w: rentalID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Перечитываем аренду с блокировкой строки (FOR UPDATE)
		rental, err := uc.rentalRepo.GetByID(txCtx, rentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				uc.logger.Warn("CompleteRental: rental id=%d not found", rentalID)
				return ErrRentalNotFound
			}
			uc.logger.Error("CompleteRental: failed to get rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		// finished - терминальный статус, обратных переходов нет
		if !rental.CanBeFinished() {
			uc.logger.Warn("CompleteRental: rental id=%d is already finished", rentalID)
			return ErrAlreadyFinished
		}

		if err := uc.rentalRepo.Finish(txCtx, rentalID); err != nil {
			uc.logger.Error("CompleteRental: failed to finish rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: failed to finish rental: %v", ErrInternal, err)
		}

		if err := uc.vehicleRepo.SetAvailability(txCtx, rental.VehicleID, true); err != nil {
			uc.logger.Error("CompleteRental: failed to update availability for vehicle id=%d: %v", rental.VehicleID, err)
			return fmt.Errorf("%w: failed to update vehicle availability: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.metrics.IncRentalsFinished()
	uc.logger.Info("CompleteRental: successfully finished rental id=%d", rentalID)
	return nil
}
