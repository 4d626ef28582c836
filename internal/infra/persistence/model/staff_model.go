package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StaffModel mirrors the 'staff' table.
type StaffModel struct {
	ID            uuid.UUID `gorm:"type:text;primaryKey"`
	Name          string    `gorm:"type:text;not null"`
	Phone         string    `gorm:"type:text"`
	Email         string    `gorm:"type:text"`
	Role          string    `gorm:"type:text"`
	Salary        float64
	JoiningDate   string                      `gorm:"type:text"`
	AssignedPumps datatypes.JSONSlice[string] `gorm:"type:text;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staff"
}

// ShiftModel mirrors the 'shifts' table.
type ShiftModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	StaffID   uuid.UUID `gorm:"type:text;not null;index"`
	ShiftType string    `gorm:"type:text;not null"`
	StartTime time.Time `gorm:"not null"`
	EndTime   *time.Time
	Status    string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShiftModel) TableName() string {
	return "shifts"
}
