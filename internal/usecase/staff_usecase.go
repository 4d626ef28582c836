package usecase

import (
	"context"
	"time"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateStaffInput struct {
	Name          string
	Phone         string
	Email         string
	Role          string
	Salary        float64
	JoiningDate   string
	AssignedPumps []string
}

type StartShiftInput struct {
	StaffID   uuid.UUID
	ShiftType entity.ShiftType
	// StartTime defaults to now.
	StartTime *time.Time
}

// StaffUsecase manages employees and their shifts.
type StaffUsecase interface {
	ListStaff(ctx context.Context) ([]*entity.Staff, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error)
	ListShifts(ctx context.Context, staffID *uuid.UUID) ([]*entity.Shift, error)
	StartShift(ctx context.Context, input *StartShiftInput) (*entity.Shift, error)
	// EndShift closes an active shift. A nil endTime means now.
	EndShift(ctx context.Context, id uuid.UUID, endTime *time.Time) (*entity.Shift, error)
}
