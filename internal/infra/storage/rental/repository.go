package rental

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// rentalColumns колонки таблицы rentals в порядке сканирования
var rentalColumns = []string{
	"id",
	"customer_id",
	"vehicle_id",
	"start_date",
	"end_date",
	"total_cost",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с арендами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую аренду
// Вызывается только из usecase создания аренды внутри транзакции,
// в паре с установкой флага доступности автомобиля
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rentals").
		Columns(
			"customer_id",
			"vehicle_id",
			"start_date",
			"end_date",
			"total_cost",
			"status",
		).
		Values(
			rental.CustomerID,
			rental.VehicleID,
			rental.StartDate,
			rental.EndDate,
			rental.TotalCost,
			rental.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает аренду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку аренды (usecase завершения аренды)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rental domain.Rental
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&rental.CustomerID,
		&rental.VehicleID,
		&rental.StartDate,
		&rental.EndDate,
		&rental.TotalCost,
		&rental.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}

// HasOverlappingActive проверяет, есть ли у автомобиля активная аренда,
// пересекающаяся с диапазоном [startDate, endDate].
// Даты включительные, поэтому пересечение: NOT (end_date < startDate OR start_date > endDate),
// что эквивалентно end_date >= startDate AND start_date <= endDate.
// Общий граничный день считается пересечением
func (r *Repository) HasOverlappingActive(ctx context.Context, vehicleID int64, startDate, endDate time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rentals").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		Where(squirrel.GtOrEq{"end_date": startDate.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"start_date": endDate.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasOverlappingActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasOverlappingActive - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// List получает список аренд с фильтрацией по клиенту, автомобилю и статусу
func (r *Repository) List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		OrderBy("id ASC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.VehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRentals(rows)
}

// Finish переводит аренду в статус finished
// Вызывается только из usecase завершения аренды внутри транзакции,
// в паре с установкой флага доступности автомобиля
func (r *Repository) Finish(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", domain.StatusFinished).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Finish - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finish - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finish - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// scanRentals сканирует результаты запроса в слайс аренд
func (r *Repository) scanRentals(rows *sql.Rows) ([]*domain.Rental, error) {
	rentals := make([]*domain.Rental, 0)

	for rows.Next() {
		var rental domain.Rental
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rental.ID,
			&rental.CustomerID,
			&rental.VehicleID,
			&rental.StartDate,
			&rental.EndDate,
			&rental.TotalCost,
			&rental.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRentals - scan row: %v", ErrScanRow, err)
		}

		rental.CreatedAt = createdAt.Time
		rental.UpdatedAt = updatedAt.Time

		rentals = append(rentals, &rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRentals - rows error: %v", ErrScanRow, err)
	}

	return rentals, nil
}
