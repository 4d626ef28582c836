package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Contact   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:text"`
	Email     string    `gorm:"type:text"`
	GST       string    `gorm:"column:gst;type:text"`
	Balance   float64
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// VehicleModel mirrors the 'vehicles' table.
type VehicleModel struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:text;not null;index"`
	Number     string    `gorm:"type:text;not null"`
	Type       string    `gorm:"type:text"`
	Capacity   string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
