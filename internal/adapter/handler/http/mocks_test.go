package http

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID string, update domain.CustomerUpdate) (*domain.Customer, error) {
	args := m.Called(customerID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockBikeService struct {
	mock.Mock
}

func (m *MockBikeService) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	args := m.Called(bike)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeService) GetAllBikes(ctx context.Context) ([]*domain.Bike, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Bike), args.Error(1)
}

func (m *MockBikeService) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	args := m.Called(bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

type MockServiceRecordService struct {
	mock.Mock
}

func (m *MockServiceRecordService) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	args := m.Called(record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) GetAllServiceRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) GetPendingOrOverdue(ctx context.Context) ([]*domain.ServiceRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) GetServiceRecordByID(ctx context.Context, serviceID string) (*domain.ServiceRecord, error) {
	args := m.Called(serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) CompleteServiceRecord(ctx context.Context, serviceID string, completionDate *time.Time) (*domain.ServiceRecord, error) {
	args := m.Called(serviceID, completionDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type fakeMetrics struct {
	mu        sync.Mutex
	requests  int
	completed int
}

func (f *fakeMetrics) RecordMetrics(c *gin.Context, start time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
}

func (f *fakeMetrics) RecordServiceCompleted() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed++
}
