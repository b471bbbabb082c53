package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OverdueAfter is how long a record may sit past its service date before it
// counts as overdue.
const OverdueAfter = 7 * 24 * time.Hour

type ServiceStatus string

const (
	StatusPending    ServiceStatus = "PENDING"
	StatusInProgress ServiceStatus = "IN_PROGRESS"
	StatusDone       ServiceStatus = "DONE"
)

var statusLabels = map[ServiceStatus]string{
	StatusPending:    "pending",
	StatusInProgress: "in-progress",
	StatusDone:       "done",
}

// Label is the external representation of the status.
func (s ServiceStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return strings.ToLower(string(s))
}

func (s ServiceStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseServiceStatus accepts either the label ("in-progress") or the stored
// constant ("IN_PROGRESS").
func ParseServiceStatus(v string) (ServiceStatus, error) {
	if status := ServiceStatus(v); status.Valid() {
		return status, nil
	}
	for status, label := range statusLabels {
		if v == label {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown service status %q", v)
}

func (s ServiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Label())
}

func (s *ServiceStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseServiceStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// swagger:model domain.ServiceRecord
type ServiceRecord struct {
	ServiceID      uuid.UUID     `json:"serviceId"`
	BikeID         uuid.UUID     `json:"bikeId" validate:"required"`
	ServiceDate    time.Time     `json:"serviceDate" validate:"required"`
	Description    string        `json:"description" validate:"required,max=1000"`
	Status         ServiceStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS DONE"`
	CompletionDate *time.Time    `json:"completionDate"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// OverdueCutoff returns the service date before which an unfinished record is
// overdue at the given moment.
func OverdueCutoff(now time.Time) time.Time {
	return now.Add(-OverdueAfter)
}

// IsPendingOrOverdue reports whether the record still needs attention at now:
// not done, and either pending/in progress or past the overdue cutoff.
func (r *ServiceRecord) IsPendingOrOverdue(now time.Time) bool {
	if r.Status == StatusDone {
		return false
	}
	if r.Status == StatusPending || r.Status == StatusInProgress {
		return true
	}
	return r.ServiceDate.Before(OverdueCutoff(now))
}

// Complete marks the record done at completedAt.
func (r *ServiceRecord) Complete(completedAt time.Time) error {
	if completedAt.Before(r.ServiceDate) {
		return NewValidationError("completion date cannot be earlier than the service date", nil)
	}
	r.Status = StatusDone
	r.CompletionDate = &completedAt
	return nil
}
