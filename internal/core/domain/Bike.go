package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.Bike
type Bike struct {
	BikeID     uuid.UUID `json:"bikeId"`
	Brand      string    `json:"brand" validate:"required,max=100"`
	Model      string    `json:"model" validate:"required,max=100"`
	Year       int       `json:"year" validate:"required,min=1860,max=2100"`
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
