package gormstore

import (
	"context"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/errors"
	"pumpdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fuelPumpRepository struct {
	db    *gorm.DB
	store recordStore[model.FuelPumpModel]
}

// NewFuelPumpRepository is the constructor for fuelPumpRepository.
func NewFuelPumpRepository(db *gorm.DB) repository.FuelPumpRepository {
	return &fuelPumpRepository{
		db: db,
		store: recordStore[model.FuelPumpModel]{
			db:       db,
			table:    "fuel pump",
			notFound: domainerrors.ErrPumpNotFound,
			conflict: domainerrors.ErrPumpAlreadyExists,
			orderBy:  "created_at",
		},
	}
}

func (repo *fuelPumpRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FuelPump, error) {
	pumpM, err := repo.store.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toFuelPumpDomain(pumpM), nil
}

func (repo *fuelPumpRepository) FindByEmail(ctx context.Context, email string) (*entity.FuelPump, error) {
	var pumpM model.FuelPumpModel
	err := repo.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).Take(&pumpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPumpNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find fuel pump by email")
	}

	return toFuelPumpDomain(&pumpM), nil
}

func (repo *fuelPumpRepository) List(ctx context.Context) ([]*entity.FuelPump, error) {
	rows, err := repo.store.list(ctx, nil)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toFuelPumpDomain), nil
}

func (repo *fuelPumpRepository) Create(ctx context.Context, pump *entity.FuelPump) error {
	if pump.ID == uuid.Nil {
		pump.ID = uuid.New()
	}
	if pump.Status == "" {
		pump.Status = entity.PumpStatusActive
	}

	pumpM := fromFuelPumpDomain(pump)
	if err := repo.store.insert(ctx, pumpM); err != nil {
		return err
	}

	pump.CreatedAt = pumpM.CreatedAt
	pump.UpdatedAt = pumpM.UpdatedAt

	return nil
}

func (repo *fuelPumpRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FuelPumpModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fuel pump status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPumpNotFound
	}

	return nil
}

func toFuelPumpDomain(data *model.FuelPumpModel) *entity.FuelPump {
	return &entity.FuelPump{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		Contact:   data.Contact,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFuelPumpDomain(data *entity.FuelPump) *model.FuelPumpModel {
	return &model.FuelPumpModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		Contact:   data.Contact,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
