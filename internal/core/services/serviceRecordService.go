package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

type ServiceRecordService struct {
	recordRepo ports.ServiceRecordRepository
	bikeRepo   ports.BikeRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
	clock      clock.Clock
}

func NewServiceRecordService(
	recordRepo ports.ServiceRecordRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	clk clock.Clock,
) *ServiceRecordService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &ServiceRecordService{
		recordRepo: recordRepo,
		bikeRepo:   bikeRepo,
		logger:     logger,
		validate:   validate,
		clock:      clk,
	}
}

func (s *ServiceRecordService) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	if record.Status == "" {
		record.Status = domain.StatusPending
	}

	if err := s.validate.Struct(record); err != nil {
		s.logger.Error("Service record validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError("validation error: "+err.Error(), err)
	}

	if _, err := s.bikeRepo.GetBikeByID(ctx, record.BikeID); err != nil {
		s.logger.Error("Service record bike lookup failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": record.BikeID,
		})
		return nil, err
	}

	if record.ServiceID == uuid.Nil {
		record.ServiceID = uuid.New()
	}
	// completion is only ever set through CompleteServiceRecord
	record.CompletionDate = nil

	createdRecord, err := s.recordRepo.CreateServiceRecord(ctx, record)
	if err != nil {
		s.logger.Error("Failed to create service record", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": record.BikeID,
		})
		return nil, err
	}

	s.logger.Info("Service record created successfully", map[string]interface{}{
		"service_id": createdRecord.ServiceID,
		"bike_id":    createdRecord.BikeID,
		"status":     createdRecord.Status,
	})

	return createdRecord, nil
}

func (s *ServiceRecordService) GetAllServiceRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	records, err := s.recordRepo.GetAllServiceRecords(ctx)
	if err != nil {
		s.logger.Error("Failed to get service records", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved service records", map[string]interface{}{
		"records_count": len(records),
	})

	return records, nil
}

// GetPendingOrOverdue reads the unfinished records from the store and keeps
// only those that still need attention at the current time.
func (s *ServiceRecordService) GetPendingOrOverdue(ctx context.Context) ([]*domain.ServiceRecord, error) {
	now := s.clock.Now()
	cutoff := domain.OverdueCutoff(now)

	records, err := s.recordRepo.GetPendingOrOverdue(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to get pending or overdue service records", map[string]interface{}{
			"error":  err.Error(),
			"cutoff": cutoff,
		})
		return nil, err
	}

	pending := make([]*domain.ServiceRecord, 0, len(records))
	for _, record := range records {
		if record.IsPendingOrOverdue(now) {
			pending = append(pending, record)
		}
	}

	s.logger.Info("Retrieved pending or overdue service records", map[string]interface{}{
		"records_count": len(pending),
		"cutoff":        cutoff,
	})

	return pending, nil
}

func (s *ServiceRecordService) GetServiceRecordByID(ctx context.Context, serviceID string) (*domain.ServiceRecord, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		s.logger.Warn("Invalid UUID format", map[string]interface{}{
			"service_id": serviceID,
			"error":      err.Error(),
		})
		return nil, domain.NewNotFoundError("Service record", serviceID)
	}

	record, err := s.recordRepo.GetServiceRecordByID(ctx, serviceUUID)
	if err != nil {
		s.logger.Error("Failed to get service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": serviceID,
		})
		return nil, err
	}

	return record, nil
}

// CompleteServiceRecord marks the record done. A nil completionDate means now.
// Completing an already finished record re-stamps its completion date.
func (s *ServiceRecordService) CompleteServiceRecord(ctx context.Context, serviceID string, completionDate *time.Time) (*domain.ServiceRecord, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		s.logger.Warn("Invalid UUID format", map[string]interface{}{
			"service_id": serviceID,
			"error":      err.Error(),
		})
		return nil, domain.NewNotFoundError("Service record", serviceID)
	}

	record, err := s.recordRepo.GetServiceRecordByID(ctx, serviceUUID)
	if err != nil {
		s.logger.Error("Failed to get service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": serviceID,
		})
		return nil, err
	}

	completedAt := s.clock.Now()
	if completionDate != nil {
		completedAt = *completionDate
	}

	if err := record.Complete(completedAt); err != nil {
		s.logger.Warn("Rejected service record completion", map[string]interface{}{
			"error":           err.Error(),
			"service_id":      serviceID,
			"service_date":    record.ServiceDate,
			"completion_date": completedAt,
		})
		return nil, err
	}

	updatedRecord, err := s.recordRepo.CompleteServiceRecord(ctx, serviceUUID, completedAt)
	if err != nil {
		s.logger.Error("Failed to complete service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": serviceID,
		})
		return nil, err
	}

	s.logger.Info("Service record completed", map[string]interface{}{
		"service_id":      serviceID,
		"completion_date": completedAt,
	})

	return updatedRecord, nil
}
