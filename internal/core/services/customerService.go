package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

type CustomerService struct {
	customerRepo ports.CustomerRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
	cache        ports.CachePort
	cacheTTL     time.Duration
}

func NewCustomerService(
	customerRepo ports.CustomerRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *CustomerService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
		validate:     validate,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.validate.Struct(customer); err != nil {
		s.logger.Error("Customer validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError("validation error: "+err.Error(), err)
	}

	if customer.CustomerID == uuid.Nil {
		customer.CustomerID = uuid.New()
	}

	createdCustomer, err := s.customerRepo.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("Failed to create customer", map[string]interface{}{
			"error": err.Error(),
			"email": customer.Email,
		})
		return nil, err
	}

	s.logger.Info("Customer created successfully", map[string]interface{}{
		"customer_id": createdCustomer.CustomerID,
	})

	return createdCustomer, nil
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.GetAllCustomers(ctx)
	if err != nil {
		s.logger.Error("Failed to get customers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved customers", map[string]interface{}{
		"customers_count": len(customers),
	})

	return customers, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		s.logger.Warn("Invalid UUID format", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return nil, domain.NewNotFoundError("Customer", customerID)
	}

	key := cacheKey("customer", customerUUID.String())
	var cached domain.Customer
	switch readCached(s.cache, s.logger, key, &cached) {
	case cacheHit:
		s.logger.Debug("Customer found in cache", map[string]interface{}{
			"customer_id": customerID,
		})
		return &cached, nil
	case cacheGone:
		return nil, domain.NewNotFoundError("Customer", customerID)
	}

	customer, err := s.customerRepo.GetCustomerByID(ctx, customerUUID)
	if err != nil {
		s.logger.Error("Failed to get customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}

	populateCached(s.cache, s.logger, key, customer, s.cacheTTL)

	return customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, update domain.CustomerUpdate) (*domain.Customer, error) {
	if err := s.validate.Struct(update); err != nil {
		s.logger.Error("Customer update validation failed", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, domain.NewValidationError("validation error: "+err.Error(), err)
	}

	existing, err := s.lookup(ctx, customerID)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)

	updatedCustomer, err := s.customerRepo.UpdateCustomer(ctx, existing)
	if err != nil {
		s.logger.Error("Failed to update customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}

	storeCached(s.cache, s.logger, cacheKey("customer", updatedCustomer.CustomerID.String()), updatedCustomer, s.cacheTTL)

	s.logger.Info("Customer updated successfully", map[string]interface{}{
		"customer_id": updatedCustomer.CustomerID,
	})

	return updatedCustomer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	existing, err := s.lookup(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.DeleteCustomer(ctx, existing.CustomerID); err != nil {
		s.logger.Error("Failed to delete customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}

	forgetCached(s.cache, s.logger, cacheKey("customer", existing.CustomerID.String()), s.cacheTTL)

	s.logger.Info("Customer deleted successfully", map[string]interface{}{
		"customer_id": customerID,
	})

	return existing, nil
}

// lookup reads the customer straight from the store, bypassing the cache, so
// writes always act on the current row.
func (s *CustomerService) lookup(ctx context.Context, customerID string) (*domain.Customer, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		s.logger.Warn("Invalid UUID format", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return nil, domain.NewNotFoundError("Customer", customerID)
	}

	customer, err := s.customerRepo.GetCustomerByID(ctx, customerUUID)
	if err != nil {
		s.logger.Error("Failed to get customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}
	return customer, nil
}
