package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBikeService_CreateBike(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	newBike := func() *domain.Bike {
		return &domain.Bike{Brand: "Trek", Model: "Marlin 7", Year: 2022, CustomerID: customerID}
	}

	t.Run("owner exists", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		customerRepo := new(MockCustomerRepository)
		svc := NewBikeService(bikeRepo, customerRepo, nopLogger{}, newValidator(), newMemoryCache(), 0)

		customerRepo.On("GetCustomerByID", customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
		bikeRepo.On("CreateBike", mock.MatchedBy(func(b *domain.Bike) bool {
			return b.BikeID != uuid.Nil && b.CustomerID == customerID
		})).Return(func(b *domain.Bike) *domain.Bike { return b }, nil).Once()

		created, err := svc.CreateBike(ctx, newBike())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.BikeID)
		assert.Equal(t, "Trek", created.Brand)
		bikeRepo.AssertExpectations(t)
		customerRepo.AssertExpectations(t)
	})

	t.Run("owner missing", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		customerRepo := new(MockCustomerRepository)
		svc := NewBikeService(bikeRepo, customerRepo, nopLogger{}, newValidator(), newMemoryCache(), 0)

		customerRepo.On("GetCustomerByID", customerID).
			Return(nil, domain.NewNotFoundError("Customer", customerID.String())).Once()

		_, err := svc.CreateBike(ctx, newBike())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		bikeRepo.AssertNotCalled(t, "CreateBike", mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		customerRepo := new(MockCustomerRepository)
		svc := NewBikeService(bikeRepo, customerRepo, nopLogger{}, newValidator(), newMemoryCache(), 0)

		_, err := svc.CreateBike(ctx, &domain.Bike{Brand: "Trek"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		customerRepo.AssertNotCalled(t, "GetCustomerByID", mock.Anything)
	})
}

func TestBikeService_GetBikeByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("cache hit skips the store", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		cache := newMemoryCache()
		svc := NewBikeService(bikeRepo, new(MockCustomerRepository), nopLogger{}, newValidator(), cache, 0)

		cached := []byte(`{"bikeId":"` + id.String() + `","brand":"Giant","model":"Talon","year":2021}`)
		require.NoError(t, cache.Set("bike:"+id.String(), cached, time.Minute))

		bike, err := svc.GetBikeByID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "Giant", bike.Brand)
		bikeRepo.AssertNotCalled(t, "GetBikeByID", mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		svc := NewBikeService(bikeRepo, new(MockCustomerRepository), nopLogger{}, newValidator(), newMemoryCache(), 0)

		bikeRepo.On("GetBikeByID", id).Return(nil, domain.NewNotFoundError("Bike", id.String())).Once()

		_, err := svc.GetBikeByID(ctx, id.String())
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := NewBikeService(new(MockBikeRepository), new(MockCustomerRepository), nopLogger{}, newValidator(), newMemoryCache(), 0)

		_, err := svc.GetBikeByID(ctx, "bike-1")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestBikeService_GetAllBikes(t *testing.T) {
	bikeRepo := new(MockBikeRepository)
	svc := NewBikeService(bikeRepo, new(MockCustomerRepository), nopLogger{}, newValidator(), newMemoryCache(), 0)

	bikeRepo.On("GetAllBikes").Return(nil, errors.New("connection reset")).Once()

	_, err := svc.GetAllBikes(context.Background())
	assert.EqualError(t, err, "connection reset")
}
