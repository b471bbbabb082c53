package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (bike_id, brand, model, year, customer_id)
	VALUES ($1, $2, $3, $4, $5)
    RETURNING bike_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, bike.BikeID, bike.Brand, bike.Model, bike.Year, bike.CustomerID).Scan(
		&bike.BikeID,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		// owner removed between the existence check and the insert
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("Customer", bike.CustomerID.String())
		}
		return nil, translateWriteError("create bike", err)
	}
	return bike, nil
}

func (r *BikeRepository) GetAllBikes(ctx context.Context) ([]*domain.Bike, error) {
	query := `SELECT bike_id, brand, model, year, customer_id, created_at, updated_at
              FROM bikes ORDER BY created_at, bike_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bikes: %w", err)
	}
	defer rows.Close()

	bikes := []*domain.Bike{}

	for rows.Next() {
		bike := &domain.Bike{}
		err := rows.Scan(
			&bike.BikeID,
			&bike.Brand,
			&bike.Model,
			&bike.Year,
			&bike.CustomerID,
			&bike.CreatedAt,
			&bike.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT bike_id, brand, model, year, customer_id, created_at, updated_at
              FROM bikes WHERE bike_id = $1`

	bike := &domain.Bike{}
	err := r.db.QueryRowContext(ctx, query, bikeID).Scan(
		&bike.BikeID,
		&bike.Brand,
		&bike.Model,
		&bike.Year,
		&bike.CustomerID,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("Bike", bikeID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get bike: %w", err)
	}

	return bike, nil
}
