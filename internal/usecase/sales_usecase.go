package usecase

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateIndentInput struct {
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	FuelType   string
	Quantity   float64
	Amount     float64
}

// CreateTransactionInput records a sale. When IndentID is set the indent
// supplies any missing customer, vehicle, fuel, quantity and amount.
type CreateTransactionInput struct {
	CustomerID    *uuid.UUID
	VehicleID     *uuid.UUID
	StaffID       *uuid.UUID
	IndentID      *string
	FuelType      string
	Quantity      float64
	Amount        float64
	PaymentMethod string
	Date          string
}

// SalesUsecase manages indents, transactions and the sales report.
type SalesUsecase interface {
	ListIndents(ctx context.Context, customerID *uuid.UUID) ([]*entity.Indent, error)
	GetIndent(ctx context.Context, id string) (*entity.Indent, error)
	CreateIndent(ctx context.Context, input *CreateIndentInput) (*entity.Indent, error)
	// IndentQR renders the indent slip as a PNG QR code.
	IndentQR(ctx context.Context, id string) ([]byte, error)
	ListTransactions(ctx context.Context, date string) ([]*entity.Transaction, error)
	// CreateTransaction stores the sale and, for indent sales, completes the indent in the same transaction.
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)
	// DailySalesReport aggregates the transactions of a date (YYYY-MM-DD, empty for today).
	DailySalesReport(ctx context.Context, date string) (*entity.DailySalesReport, error)
}
