package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used by readings, transactions and reports.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in DateLayout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Reading records the meter values of a dispenser for a shift.
type Reading struct {
	ID             uuid.UUID `json:"id"`
	PumpID         string    `json:"pump_id"` // Dispenser label, e.g. "Pump-1".
	Shift          string    `json:"shift"`
	StaffID        uuid.UUID `json:"staff_id"`
	OpeningReading float64   `json:"opening_reading"`
	ClosingReading float64   `json:"closing_reading"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// Dispensed is the volume sold between the opening and closing readings.
func (r *Reading) Dispensed() float64 {
	return r.ClosingReading - r.OpeningReading
}

// InventoryItem is the stock level of one fuel type.
type InventoryItem struct {
	ID           uuid.UUID `json:"id"`
	FuelType     string    `json:"fuel_type"`
	Quantity     float64   `json:"quantity"`
	PricePerUnit float64   `json:"price_per_unit"`
	Date         string    `json:"date"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Consumable is a non-fuel item (oil, coolant) sold or used at the station.
type Consumable struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	PricePerUnit float64   `json:"price_per_unit"`
	TotalPrice   float64   `json:"total_price"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}
