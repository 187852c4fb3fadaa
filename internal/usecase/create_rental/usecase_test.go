package create_rental

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// --- фейки репозиториев для unit-тестов ---

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[int64]*domain.Vehicle
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVehicleRepo) SetAvailability(_ context.Context, id int64, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	v.Available = available
	return nil
}

type fakeRentalRepo struct {
	mu      sync.Mutex
	nextID  int64
	rentals []*domain.Rental
}

func (r *fakeRentalRepo) Create(_ context.Context, rental *domain.Rental) (*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *rental
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.rentals = append(r.rentals, &created)
	return &created, nil
}

func (r *fakeRentalRepo) HasOverlappingActive(_ context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rental := range r.rentals {
		if rental.VehicleID == vehicleID && rental.IsActive() &&
			domain.RangesOverlap(rental.StartDate, rental.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции.
// Мьютекс имитирует сериализацию конкурентных транзакций
type fakeTxManager struct {
	mu  sync.Mutex
	err error // если задан, возвращается вместо выполнения fn
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	customers *fakeCustomerRepo
	vehicles  *fakeVehicleRepo
	rentals   *fakeRentalRepo
	tx        *fakeTxManager
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		customers: &fakeCustomerRepo{customers: map[int64]*domain.Customer{
			1: {ID: 1, Name: "Alice Smith", Email: "alice@example.com"},
		}},
		vehicles: &fakeVehicleRepo{vehicles: map[int64]*domain.Vehicle{
			10: {ID: 10, Brand: "Toyota", Model: "Corolla", Year: 2021, DailyRate: 45.0, Class: domain.ClassEconomy, Available: true},
			20: {ID: 20, Brand: "Nissan", Model: "X-Trail", Year: 2022, DailyRate: 50.0, Class: domain.ClassSUV, Available: true},
		}},
		rentals: &fakeRentalRepo{},
		tx:      &fakeTxManager{},
	}
	f.uc = NewUseCase(f.customers, f.vehicles, f.rentals, f.tx, nil, nopLogger{})
	return f
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	// будние дни: Tue..Thu, 3 дня по 45.00
	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 135.00, resp.TotalCost)
	assert.Equal(t, "standard", resp.Policy)
	assert.Equal(t, "active", resp.Status)

	// флаг доступности снят атомарно с созданием аренды
	v, err := f.vehicles.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, v.Available)
}

func TestExecute_SUVGetsClassPremium(t *testing.T) {
	f := newFixture()

	// SUV через выходные: премиум-политика, а не скидка выходного дня
	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  20,
		StartDate:  day(2025, time.June, 5), // Thu
		EndDate:    day(2025, time.June, 8), // Sun
	})
	require.NoError(t, err)

	assert.Equal(t, "class_premium", resp.Policy)
	// 4 дня * 50.00 * 1.20 = 240.00
	assert.Equal(t, 240.00, resp.TotalCost)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 999,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  999,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_VehicleNotFoundBeforeRangeCheck(t *testing.T) {
	f := newFixture()

	// отсутствие автомобиля важнее некорректного диапазона дат
	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  999,
		StartDate:  day(2025, time.June, 5),
		EndDate:    day(2025, time.June, 3),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_InvalidRange(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 5),
		EndDate:    day(2025, time.June, 3),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// никаких побочных эффектов
	assert.Empty(t, f.rentals.rentals)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero customer id", &Request{VehicleID: 10, StartDate: day(2025, time.June, 3), EndDate: day(2025, time.June, 5)}},
		{"zero vehicle id", &Request{CustomerID: 1, StartDate: day(2025, time.June, 3), EndDate: day(2025, time.June, 5)}},
		{"missing start date", &Request{CustomerID: 1, VehicleID: 10, EndDate: day(2025, time.June, 5)}},
		{"missing end date", &Request{CustomerID: 1, VehicleID: 10, StartDate: day(2025, time.June, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_VehicleUnavailable(t *testing.T) {
	f := newFixture()
	f.vehicles.vehicles[10].Available = false

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestExecute_ConflictDespiteAvailableFlag(t *testing.T) {
	f := newFixture()

	// Активная аренда существует, но флаг доступности ошибочно взведён.
	// Источник истины - множество активных аренд, создание должно отклониться
	f.rentals.rentals = append(f.rentals.rentals, &domain.Rental{
		ID:         100,
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 4),
		EndDate:    day(2025, time.June, 6),
		Status:     domain.StatusActive,
	})

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	assert.ErrorIs(t, err, ErrRentalConflict)
}

func TestExecute_FinishedRentalDoesNotConflict(t *testing.T) {
	f := newFixture()

	f.rentals.rentals = append(f.rentals.rentals, &domain.Rental{
		ID:         100,
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
		Status:     domain.StatusFinished,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
}

func TestExecute_RetriesExhaustedMapsToBusy(t *testing.T) {
	f := newFixture()
	f.tx.err = txmanager.ErrSerializationFailure

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		VehicleID:  10,
		StartDate:  day(2025, time.June, 3),
		EndDate:    day(2025, time.June, 5),
	})
	assert.ErrorIs(t, err, ErrBusy)
}

func TestExecute_ConcurrentCreatesCommitExactlyOne(t *testing.T) {
	f := newFixture()

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), &Request{
				CustomerID: 1,
				VehicleID:  10,
				StartDate:  day(2025, time.June, 3),
				EndDate:    day(2025, time.June, 5),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
	assert.Len(t, f.rentals.rentals, 1)
}
