package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

type BikeService struct {
	bikeRepo     ports.BikeRepository
	customerRepo ports.CustomerRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
	cache        ports.CachePort
	cacheTTL     time.Duration
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	customerRepo ports.CustomerRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *BikeService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &BikeService{
		bikeRepo:     bikeRepo,
		customerRepo: customerRepo,
		logger:       logger,
		validate:     validate,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *BikeService) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError("validation error: "+err.Error(), err)
	}

	// owner must exist before the bike is stored
	if _, err := s.customerRepo.GetCustomerByID(ctx, bike.CustomerID); err != nil {
		s.logger.Error("Bike owner lookup failed", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": bike.CustomerID,
		})
		return nil, err
	}

	if bike.BikeID == uuid.Nil {
		bike.BikeID = uuid.New()
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": bike.CustomerID,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id":     createdBike.BikeID,
		"customer_id": createdBike.CustomerID,
	})

	return createdBike, nil
}

func (s *BikeService) GetAllBikes(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.GetAllBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved bikes", map[string]interface{}{
		"bikes_count": len(bikes),
	})

	return bikes, nil
}

func (s *BikeService) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Warn("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, domain.NewNotFoundError("Bike", bikeID)
	}

	key := cacheKey("bike", bikeUUID.String())
	var cachedBike domain.Bike
	if readCached(s.cache, s.logger, key, &cachedBike) == cacheHit {
		s.logger.Debug("Bike found in cache", map[string]interface{}{
			"bike_id": bikeID,
		})
		return &cachedBike, nil
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	populateCached(s.cache, s.logger, key, bike, s.cacheTTL)

	return bike, nil
}
