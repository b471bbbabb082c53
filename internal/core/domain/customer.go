package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.Customer
type Customer struct {
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name" validate:"required,max=100"`
	Email      string    `json:"email" validate:"required,email,max=255"`
	Phone      string    `json:"phone" validate:"required,max=32"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CustomerUpdate carries the mutable customer fields. Nil means unchanged.
type CustomerUpdate struct {
	Name  *string `validate:"omitempty,min=1,max=100"`
	Phone *string `validate:"omitempty,min=1,max=32"`
}

func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
}
