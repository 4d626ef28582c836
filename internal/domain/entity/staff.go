package entity

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a station employee.
type Staff struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Role          string    `json:"role"` // Job title, e.g. "Pump Operator".
	Salary        float64   `json:"salary"`
	JoiningDate   string    `json:"joining_date"`
	AssignedPumps []string  `json:"assigned_pumps"`
	CreatedAt     time.Time `json:"created_at"`
}

// ShiftType names the part of the day a shift covers.
type ShiftType string

const (
	ShiftMorning   ShiftType = "Morning"
	ShiftAfternoon ShiftType = "Afternoon"
	ShiftEvening   ShiftType = "Evening"
)

// IsValid checks if the ShiftType is a known value.
func (t ShiftType) IsValid() bool {
	switch t {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	default:
		return false
	}
}

// ShiftStatus tracks whether a shift is still open.
type ShiftStatus string

const (
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusCompleted ShiftStatus = "completed"
)

// Shift is a working period of a staff member.
type Shift struct {
	ID        uuid.UUID   `json:"id"`
	StaffID   uuid.UUID   `json:"staff_id"`
	ShiftType ShiftType   `json:"shift_type"`
	StartTime time.Time   `json:"start_time"`
	EndTime   *time.Time  `json:"end_time,omitempty"`
	Status    ShiftStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
