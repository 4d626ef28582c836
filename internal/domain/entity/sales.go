package entity

import (
	"time"

	"github.com/google/uuid"
)

// IndentStatus tracks the fulfilment of an indent.
type IndentStatus string

const (
	IndentPending   IndentStatus = "Pending"
	IndentCompleted IndentStatus = "Completed"
	IndentCancelled IndentStatus = "Cancelled"
)

// IsValid checks if the IndentStatus is a known value.
func (s IndentStatus) IsValid() bool {
	switch s {
	case IndentPending, IndentCompleted, IndentCancelled:
		return true
	default:
		return false
	}
}

// Indent is a pre-authorized request for fuel billed to a customer and
// fulfilled later by a transaction. IDs look like IND20240115093000-<suffix>.
type Indent struct {
	ID         string       `json:"id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	VehicleID  uuid.UUID    `json:"vehicle_id"`
	FuelType   string       `json:"fuel_type"`
	Quantity   float64      `json:"quantity"`
	Amount     float64      `json:"amount"`
	Status     IndentStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Transaction is a completed fuel sale. IDs look like TRX20240115093000-<suffix>.
type Transaction struct {
	ID            string     `json:"id"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	VehicleID     *uuid.UUID `json:"vehicle_id,omitempty"`
	StaffID       *uuid.UUID `json:"staff_id,omitempty"`
	IndentID      *string    `json:"indent_id,omitempty"`
	Amount        float64    `json:"amount"`
	Quantity      float64    `json:"quantity"`
	FuelType      string     `json:"fuel_type"`
	PaymentMethod string     `json:"payment_method"`
	Date          string     `json:"date"`
	CreatedAt     time.Time  `json:"created_at"`
}

// FuelSales aggregates the transactions of one fuel type.
type FuelSales struct {
	FuelType         string  `json:"fuel_type"`
	Quantity         float64 `json:"quantity"`
	Amount           float64 `json:"amount"`
	TransactionCount int64   `json:"transaction_count"`
}

// DailySalesReport summarises a day of transactions.
type DailySalesReport struct {
	Date             string       `json:"date"`
	ByFuelType       []*FuelSales `json:"by_fuel_type"`
	TotalQuantity    float64      `json:"total_quantity"`
	TotalAmount      float64      `json:"total_amount"`
	TransactionCount int64        `json:"transaction_count"`
}

// NewDailySalesReport builds the report totals from per-fuel aggregates.
func NewDailySalesReport(date string, byFuel []*FuelSales) *DailySalesReport {
	report := &DailySalesReport{
		Date:       date,
		ByFuelType: byFuel,
	}
	if report.ByFuelType == nil {
		report.ByFuelType = []*FuelSales{}
	}

	for _, sales := range byFuel {
		report.TotalQuantity += sales.Quantity
		report.TotalAmount += sales.Amount
		report.TransactionCount += sales.TransactionCount
	}

	return report
}
