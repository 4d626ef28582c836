package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a credit customer billed for indents and transactions.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"` // Contact person.
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	GST       string    `json:"gst"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// Vehicle belongs to a customer and is referenced by indents.
type Vehicle struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Number     string    `json:"number"` // Registration plate, e.g. KA-01-AB-1234.
	Type       string    `json:"type"`
	Capacity   string    `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
}
