package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

type ServiceRecordRepository interface {
	CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	GetAllServiceRecords(ctx context.Context) ([]*domain.ServiceRecord, error)
	// GetPendingOrOverdue returns unfinished records that are pending, in
	// progress, or have a service date before overdueBefore.
	GetPendingOrOverdue(ctx context.Context, overdueBefore time.Time) ([]*domain.ServiceRecord, error)
	GetServiceRecordByID(ctx context.Context, serviceID uuid.UUID) (*domain.ServiceRecord, error)
	CompleteServiceRecord(ctx context.Context, serviceID uuid.UUID, completedAt time.Time) (*domain.ServiceRecord, error)
}

type ServiceRecordService interface {
	CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	GetAllServiceRecords(ctx context.Context) ([]*domain.ServiceRecord, error)
	GetPendingOrOverdue(ctx context.Context) ([]*domain.ServiceRecord, error)
	GetServiceRecordByID(ctx context.Context, serviceID string) (*domain.ServiceRecord, error)
	CompleteServiceRecord(ctx context.Context, serviceID string, completionDate *time.Time) (*domain.ServiceRecord, error)
}
