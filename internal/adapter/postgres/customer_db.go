package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `customer_id, name, email, phone, created_at, updated_at`

func scanCustomer(row interface{ Scan(...interface{}) error }) (*domain.Customer, error) {
	customer := &domain.Customer{}
	err := row.Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `INSERT INTO customers (customer_id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Email,
		customer.Phone,
	).Scan(
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, translateWriteError("create customer", err)
	}
	return customer, nil
}

func (r *CustomerRepository) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at, customer_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, customerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("Customer", customerID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `UPDATE customers
		SET
			name = $1,
			phone = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE customer_id = $3
		RETURNING ` + customerColumns

	updated, err := scanCustomer(r.db.QueryRowContext(ctx, query,
		customer.Name,
		customer.Phone,
		customer.CustomerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Customer", customer.CustomerID.String())
		}
		return nil, translateWriteError("update customer", err)
	}
	return updated, nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	query := `DELETE FROM customers WHERE customer_id = $1`

	result, err := r.db.ExecContext(ctx, query, customerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewConflictError("customer still owns bikes", err)
		}
		return translateWriteError("delete customer", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("Customer", customerID.String())
	}

	return nil
}
