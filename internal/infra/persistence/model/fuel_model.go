package model

import (
	"time"

	"github.com/google/uuid"
)

// ReadingModel mirrors the 'readings' table.
type ReadingModel struct {
	ID             uuid.UUID `gorm:"type:text;primaryKey"`
	PumpID         string    `gorm:"type:text;not null"`
	Shift          string    `gorm:"type:text"`
	StaffID        uuid.UUID `gorm:"type:text;not null"`
	OpeningReading float64
	ClosingReading float64
	Date           string `gorm:"type:text;not null;index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReadingModel) TableName() string {
	return "readings"
}

// InventoryModel mirrors the 'inventory' table.
type InventoryModel struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey"`
	FuelType     string    `gorm:"type:text;not null"`
	Quantity     float64
	PricePerUnit float64
	Date         string `gorm:"type:text;not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}

// ConsumableModel mirrors the 'consumables' table.
type ConsumableModel struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey"`
	Name         string    `gorm:"type:text;not null"`
	Quantity     float64
	PricePerUnit float64
	TotalPrice   float64
	Date         string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsumableModel) TableName() string {
	return "consumables"
}
