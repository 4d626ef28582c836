package model

import (
	"time"

	"github.com/google/uuid"
)

// IndentModel mirrors the 'indents' table. The ID is the IND-prefixed slip number.
type IndentModel struct {
	ID         string    `gorm:"type:text;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:text;not null;index"`
	VehicleID  uuid.UUID `gorm:"type:text;not null"`
	FuelType   string    `gorm:"type:text;not null"`
	Quantity   float64
	Amount     float64
	Status     string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndentModel) TableName() string {
	return "indents"
}

// TransactionModel mirrors the 'transactions' table. The ID is the TRX-prefixed receipt number.
type TransactionModel struct {
	ID            string     `gorm:"type:text;primaryKey"`
	CustomerID    *uuid.UUID `gorm:"type:text"`
	VehicleID     *uuid.UUID `gorm:"type:text"`
	StaffID       *uuid.UUID `gorm:"type:text"`
	IndentID      *string    `gorm:"type:text;uniqueIndex"`
	Amount        float64
	Quantity      float64
	FuelType      string `gorm:"type:text;not null"`
	PaymentMethod string `gorm:"type:text"`
	Date          string `gorm:"type:text;not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// FuelSalesRow is the scan target of the daily sales aggregation.
type FuelSalesRow struct {
	FuelType         string
	Quantity         float64
	Amount           float64
	TransactionCount int64
}
