package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetAllBikes(ctx context.Context) ([]*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
}

type BikeService interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetAllBikes(ctx context.Context) ([]*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error)
}
