package repository

import (
	"context"

	"pumpdesk/internal/domain/entity"
)

// SalesRepository persists indents and transactions and aggregates sales.
type SalesRepository interface {
	FindIndentByID(ctx context.Context, id string) (*entity.Indent, error)
	ListIndents(ctx context.Context, filter Filter) ([]*entity.Indent, error)
	CreateIndent(ctx context.Context, indent *entity.Indent) error
	UpdateIndentStatus(ctx context.Context, id string, status entity.IndentStatus) error

	ListTransactions(ctx context.Context, filter Filter) ([]*entity.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error

	// DailySales groups the transactions of a calendar date by fuel type.
	DailySales(ctx context.Context, date string) ([]*entity.FuelSales, error)
}
