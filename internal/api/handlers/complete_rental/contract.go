package complete_rental

import "context"

type CompleteRentalUseCase interface {
	Execute(ctx context.Context, rentalID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
