package gormstore

import (
	"context"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type staffRepository struct {
	staff  recordStore[model.StaffModel]
	shifts recordStore[model.ShiftModel]
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{
		staff: recordStore[model.StaffModel]{
			db:       db,
			table:    "staff member",
			notFound: domainerrors.ErrStaffNotFound,
			orderBy:  "created_at",
			columns:  []string{"role", "email"},
		},
		shifts: recordStore[model.ShiftModel]{
			db:       db,
			table:    "shift",
			notFound: domainerrors.ErrShiftNotFound,
			orderBy:  "start_time DESC",
			columns:  []string{"staff_id", "status", "end_time"},
		},
	}
}

func (repo *staffRepository) FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	row, err := repo.staff.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toStaffDomain(row), nil
}

func (repo *staffRepository) ListStaff(ctx context.Context, filter repository.Filter) ([]*entity.Staff, error) {
	rows, err := repo.staff.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toStaffDomain), nil
}

func (repo *staffRepository) CreateStaff(ctx context.Context, staff *entity.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}

	row := fromStaffDomain(staff)
	if err := repo.staff.insert(ctx, row); err != nil {
		return err
	}
	staff.CreatedAt = row.CreatedAt

	return nil
}

func (repo *staffRepository) FindShiftByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	row, err := repo.shifts.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toShiftDomain(row), nil
}

func (repo *staffRepository) ListShifts(ctx context.Context, filter repository.Filter) ([]*entity.Shift, error) {
	rows, err := repo.shifts.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toShiftDomain), nil
}

func (repo *staffRepository) CreateShift(ctx context.Context, shift *entity.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}

	row := fromShiftDomain(shift)
	if err := repo.shifts.insert(ctx, row); err != nil {
		return err
	}
	shift.CreatedAt = row.CreatedAt

	return nil
}

func (repo *staffRepository) UpdateShift(ctx context.Context, id uuid.UUID, patch repository.Patch) (*entity.Shift, error) {
	row, err := repo.shifts.update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	return toShiftDomain(row), nil
}

func toStaffDomain(data *model.StaffModel) *entity.Staff {
	pumps := assignedPumps(data.AssignedPumps)

	return &entity.Staff{
		ID:            data.ID,
		Name:          data.Name,
		Phone:         data.Phone,
		Email:         data.Email,
		Role:          data.Role,
		Salary:        data.Salary,
		JoiningDate:   data.JoiningDate,
		AssignedPumps: pumps,
		CreatedAt:     data.CreatedAt,
	}
}

func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	return &model.StaffModel{
		ID:            data.ID,
		Name:          data.Name,
		Phone:         data.Phone,
		Email:         data.Email,
		Role:          data.Role,
		Salary:        data.Salary,
		JoiningDate:   data.JoiningDate,
		AssignedPumps: datatypes.NewJSONSlice(assignedPumps(data.AssignedPumps)),
		CreatedAt:     data.CreatedAt,
	}
}

// assignedPumps keeps the column a JSON array; a nil slice would encode as null.
func assignedPumps(pumps []string) []string {
	if pumps == nil {
		return []string{}
	}

	return pumps
}

func toShiftDomain(data *model.ShiftModel) *entity.Shift {
	return &entity.Shift{
		ID:        data.ID,
		StaffID:   data.StaffID,
		ShiftType: entity.ShiftType(data.ShiftType),
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Status:    entity.ShiftStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

func fromShiftDomain(data *entity.Shift) *model.ShiftModel {
	return &model.ShiftModel{
		ID:        data.ID,
		StaffID:   data.StaffID,
		ShiftType: string(data.ShiftType),
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
	}
}
