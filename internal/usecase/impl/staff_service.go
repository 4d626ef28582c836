package impl

import (
	"context"
	"time"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// staffService implements the StaffUsecase interface.
type staffService struct {
	staffRepo repository.StaffRepository
	now       func() time.Time
}

// NewStaffService is the constructor for staffService.
func NewStaffService(staffRepo repository.StaffRepository) usecase.StaffUsecase {
	return &staffService{staffRepo: staffRepo, now: time.Now}
}

func (srv *staffService) ListStaff(ctx context.Context) ([]*entity.Staff, error) {
	return srv.staffRepo.ListStaff(ctx, nil)
}

func (srv *staffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	return srv.staffRepo.FindStaffByID(ctx, id)
}

func (srv *staffService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.Staff, error) {
	if input.JoiningDate != "" {
		if _, err := time.Parse(entity.DateLayout, input.JoiningDate); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("joining_date must be YYYY-MM-DD")
		}
	}

	pumps := input.AssignedPumps
	if pumps == nil {
		pumps = []string{}
	}

	staff := &entity.Staff{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		Role:          input.Role,
		Salary:        input.Salary,
		JoiningDate:   input.JoiningDate,
		AssignedPumps: pumps,
	}
	if err := srv.staffRepo.CreateStaff(ctx, staff); err != nil {
		return nil, errors.Wrap(err, "failed to create staff member")
	}

	return staff, nil
}

func (srv *staffService) ListShifts(ctx context.Context, staffID *uuid.UUID) ([]*entity.Shift, error) {
	filter := repository.Filter{}
	if staffID != nil {
		filter["staff_id"] = *staffID
	}

	return srv.staffRepo.ListShifts(ctx, filter)
}

// StartShift opens a shift. A staff member has at most one active shift.
func (srv *staffService) StartShift(ctx context.Context, input *usecase.StartShiftInput) (*entity.Shift, error) {
	if !input.ShiftType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shift_type must be Morning, Afternoon or Evening")
	}

	if _, err := srv.staffRepo.FindStaffByID(ctx, input.StaffID); err != nil {
		return nil, errors.Wrap(err, "failed to find staff member")
	}

	active, err := srv.staffRepo.ListShifts(ctx, repository.Filter{
		"staff_id": input.StaffID,
		"status":   string(entity.ShiftStatusActive),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active shifts")
	}
	if len(active) > 0 {
		return nil, domainerrors.ErrConflict.WithDetails("staff member already has an active shift")
	}

	start := srv.now().UTC()
	if input.StartTime != nil {
		start = input.StartTime.UTC()
	}

	shift := &entity.Shift{
		StaffID:   input.StaffID,
		ShiftType: input.ShiftType,
		StartTime: start,
		Status:    entity.ShiftStatusActive,
	}
	if err := srv.staffRepo.CreateShift(ctx, shift); err != nil {
		return nil, errors.Wrap(err, "failed to create shift")
	}

	return shift, nil
}

func (srv *staffService) EndShift(ctx context.Context, id uuid.UUID, endTime *time.Time) (*entity.Shift, error) {
	shift, err := srv.staffRepo.FindShiftByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shift")
	}
	if shift.Status == entity.ShiftStatusCompleted {
		return nil, domainerrors.ErrShiftAlreadyEnded
	}

	end := srv.now().UTC()
	if endTime != nil {
		end = endTime.UTC()
	}
	if end.Before(shift.StartTime) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end_time is before the shift start")
	}

	return srv.staffRepo.UpdateShift(ctx, id, repository.Patch{
		"end_time": end,
		"status":   string(entity.ShiftStatusCompleted),
	})
}
