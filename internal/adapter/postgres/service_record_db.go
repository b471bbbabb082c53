package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

type ServiceRecordRepository struct {
	db *sql.DB
}

func NewServiceRecordRepository(db *sql.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: db}
}

const serviceRecordColumns = `service_id, bike_id, service_date, description, status, completion_date, created_at, updated_at`

func scanServiceRecord(row interface{ Scan(...interface{}) error }) (*domain.ServiceRecord, error) {
	record := &domain.ServiceRecord{}
	var completion sql.NullTime
	err := row.Scan(
		&record.ServiceID,
		&record.BikeID,
		&record.ServiceDate,
		&record.Description,
		&record.Status,
		&completion,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if completion.Valid {
		record.CompletionDate = &completion.Time
	}
	return record, nil
}

func (r *ServiceRecordRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*domain.ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*domain.ServiceRecord{}
	for rows.Next() {
		record, err := scanServiceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ServiceRecordRepository) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	query := `INSERT INTO service_records (service_id, bike_id, service_date, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + serviceRecordColumns

	created, err := scanServiceRecord(r.db.QueryRowContext(ctx, query,
		record.ServiceID,
		record.BikeID,
		record.ServiceDate,
		record.Description,
		string(record.Status),
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("Bike", record.BikeID.String())
		}
		return nil, translateWriteError("create service record", err)
	}
	return created, nil
}

func (r *ServiceRecordRepository) GetAllServiceRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + `
		FROM service_records
		ORDER BY service_date, service_id`

	records, err := r.queryRecords(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	return records, nil
}

func (r *ServiceRecordRepository) GetPendingOrOverdue(ctx context.Context, overdueBefore time.Time) ([]*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + `
		FROM service_records
		WHERE (status IN ($1, $2) OR service_date < $3)
			AND status <> $4
		ORDER BY service_date, service_id`

	records, err := r.queryRecords(ctx, query,
		string(domain.StatusPending),
		string(domain.StatusInProgress),
		overdueBefore,
		string(domain.StatusDone),
	)
	if err != nil {
		return nil, fmt.Errorf("list pending or overdue service records: %w", err)
	}
	return records, nil
}

func (r *ServiceRecordRepository) GetServiceRecordByID(ctx context.Context, serviceID uuid.UUID) (*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + ` FROM service_records WHERE service_id = $1`

	record, err := scanServiceRecord(r.db.QueryRowContext(ctx, query, serviceID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("Service record", serviceID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get service record: %w", err)
	}
	return record, nil
}

func (r *ServiceRecordRepository) CompleteServiceRecord(ctx context.Context, serviceID uuid.UUID, completedAt time.Time) (*domain.ServiceRecord, error) {
	query := `UPDATE service_records
		SET
			status = $1,
			completion_date = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE service_id = $3
		RETURNING ` + serviceRecordColumns

	record, err := scanServiceRecord(r.db.QueryRowContext(ctx, query,
		string(domain.StatusDone),
		completedAt,
		serviceID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Service record", serviceID.String())
		}
		return nil, translateWriteError("complete service record", err)
	}
	return record, nil
}
