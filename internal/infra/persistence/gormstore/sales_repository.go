package gormstore

import (
	"context"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type salesRepository struct {
	db           *gorm.DB
	indents      recordStore[model.IndentModel]
	transactions recordStore[model.TransactionModel]
}

// NewSalesRepository is the constructor for salesRepository.
func NewSalesRepository(db *gorm.DB) repository.SalesRepository {
	return &salesRepository{
		db: db,
		indents: recordStore[model.IndentModel]{
			db:       db,
			table:    "indent",
			notFound: domainerrors.ErrIndentNotFound,
			orderBy:  "created_at DESC",
			columns:  []string{"customer_id", "vehicle_id", "status", "fuel_type"},
		},
		transactions: recordStore[model.TransactionModel]{
			db:      db,
			table:   "transaction",
			orderBy: "created_at DESC",
			columns: []string{"customer_id", "date", "fuel_type", "payment_method", "indent_id"},
		},
	}
}

func (repo *salesRepository) FindIndentByID(ctx context.Context, id string) (*entity.Indent, error) {
	row, err := repo.indents.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toIndentDomain(row), nil
}

func (repo *salesRepository) ListIndents(ctx context.Context, filter repository.Filter) ([]*entity.Indent, error) {
	rows, err := repo.indents.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toIndentDomain), nil
}

func (repo *salesRepository) CreateIndent(ctx context.Context, indent *entity.Indent) error {
	if indent.Status == "" {
		indent.Status = entity.IndentPending
	}

	row := &model.IndentModel{
		ID:         indent.ID,
		CustomerID: indent.CustomerID,
		VehicleID:  indent.VehicleID,
		FuelType:   indent.FuelType,
		Quantity:   indent.Quantity,
		Amount:     indent.Amount,
		Status:     string(indent.Status),
	}
	if err := repo.indents.insert(ctx, row); err != nil {
		return err
	}
	indent.CreatedAt = row.CreatedAt

	return nil
}

func (repo *salesRepository) UpdateIndentStatus(ctx context.Context, id string, status entity.IndentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IndentModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update indent status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIndentNotFound
	}

	return nil
}

func (repo *salesRepository) ListTransactions(ctx context.Context, filter repository.Filter) ([]*entity.Transaction, error) {
	rows, err := repo.transactions.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toTransactionDomain), nil
}

// CreateTransaction inserts a sale. A second transaction for the same indent
// is skipped by the indent_id upsert target and surfaces as ErrIndentNotPending;
// any other unique violation is a plain conflict.
func (repo *salesRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	row := &model.TransactionModel{
		ID:            transaction.ID,
		CustomerID:    transaction.CustomerID,
		VehicleID:     transaction.VehicleID,
		StaffID:       transaction.StaffID,
		IndentID:      transaction.IndentID,
		Amount:        transaction.Amount,
		Quantity:      transaction.Quantity,
		FuelType:      transaction.FuelType,
		PaymentMethod: transaction.PaymentMethod,
		Date:          transaction.Date,
	}
	if row.IndentID == nil {
		if err := repo.transactions.insert(ctx, row); err != nil {
			return err
		}
		transaction.CreatedAt = row.CreatedAt

		return nil
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "indent_id"}},
			DoNothing: true,
		}).
		Create(row)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrConflict, "failed to insert transaction")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIndentNotPending
	}
	transaction.CreatedAt = row.CreatedAt

	return nil
}

func (repo *salesRepository) DailySales(ctx context.Context, date string) ([]*entity.FuelSales, error) {
	var rows []*model.FuelSalesRow
	err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("fuel_type, COALESCE(SUM(quantity), 0) AS quantity, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS transaction_count").
		Where("date = ?", date).
		Group("fuel_type").
		Order("fuel_type").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate daily sales")
	}

	sales := make([]*entity.FuelSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, &entity.FuelSales{
			FuelType:         row.FuelType,
			Quantity:         row.Quantity,
			Amount:           row.Amount,
			TransactionCount: row.TransactionCount,
		})
	}

	return sales, nil
}

func toIndentDomain(data *model.IndentModel) *entity.Indent {
	return &entity.Indent{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		VehicleID:  data.VehicleID,
		FuelType:   data.FuelType,
		Quantity:   data.Quantity,
		Amount:     data.Amount,
		Status:     entity.IndentStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		VehicleID:     data.VehicleID,
		StaffID:       data.StaffID,
		IndentID:      data.IndentID,
		Amount:        data.Amount,
		Quantity:      data.Quantity,
		FuelType:      data.FuelType,
		PaymentMethod: data.PaymentMethod,
		Date:          data.Date,
		CreatedAt:     data.CreatedAt,
	}
}
