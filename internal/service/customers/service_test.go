package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-RentalService/internal/service/customers/models"
)

type fakeCustomerRepo struct {
	nextID    int64
	customers []*domain.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return nil, customerRepo.ErrDuplicateEmail
		}
	}
	r.nextID++
	created := *customer
	created.ID = r.nextID
	r.customers = append(r.customers, &created)
	return &created, nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	return r.customers, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_NormalizesInput(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name:  "  Alice Smith  ",
		Email: " Alice@Example.COM ",
		Phone: " +64 21 123 4567 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "+64 21 123 4567", resp.Phone)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", Phone: "+64 21 123 4567",
	})
	require.NoError(t, err)

	// тот же email в другом регистре - дубликат после нормализации
	_, err = svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name: "Alice Again", Email: "ALICE@example.com", Phone: "+64 21 000 0000",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.CreateCustomerRequest
	}{
		{"empty name", &models.CreateCustomerRequest{Email: "a@b.com", Phone: "123"}},
		{"empty email", &models.CreateCustomerRequest{Name: "Alice", Phone: "123"}},
		{"empty phone", &models.CreateCustomerRequest{Name: "Alice", Email: "a@b.com"}},
		{"whitespace only name", &models.CreateCustomerRequest{Name: "   ", Email: "a@b.com", Phone: "123"}},
		{"email without at sign", &models.CreateCustomerRequest{Name: "Alice", Email: "not-an-email", Phone: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", Phone: "123",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name: "Bob", Email: "bob@example.com", Phone: "456",
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Customers, 2)
}
