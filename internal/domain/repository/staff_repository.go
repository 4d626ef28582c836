package repository

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// StaffRepository persists employees and their shifts.
type StaffRepository interface {
	FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	ListStaff(ctx context.Context, filter Filter) ([]*entity.Staff, error)
	CreateStaff(ctx context.Context, staff *entity.Staff) error

	FindShiftByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)
	ListShifts(ctx context.Context, filter Filter) ([]*entity.Shift, error)
	CreateShift(ctx context.Context, shift *entity.Shift) error
	UpdateShift(ctx context.Context, id uuid.UUID, patch Patch) (*entity.Shift, error)
}
