package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetAllCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetAllCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, update domain.CustomerUpdate) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
}
