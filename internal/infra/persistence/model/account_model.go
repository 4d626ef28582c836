package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'users' table. IDs are generated by the application
// so that the same schema works on SQLite and PostgreSQL.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey"`
	Username     string    `gorm:"type:text;unique;not null"`
	Email        string    `gorm:"type:text;unique;not null"`
	Role         string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	PasswordSalt string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// FuelPumpModel mirrors the 'fuel_pumps' table.
type FuelPumpModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;unique;not null"`
	Address   string    `gorm:"type:text"`
	Contact   string    `gorm:"type:text"`
	Status    string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FuelPumpModel) TableName() string {
	return "fuel_pumps"
}
