package gormstore

import (
	"context"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fuelRepository struct {
	readings    recordStore[model.ReadingModel]
	inventory   recordStore[model.InventoryModel]
	consumables recordStore[model.ConsumableModel]
}

// NewFuelRepository is the constructor for fuelRepository.
func NewFuelRepository(db *gorm.DB) repository.FuelRepository {
	return &fuelRepository{
		readings: recordStore[model.ReadingModel]{
			db:      db,
			table:   "reading",
			orderBy: "created_at",
			columns: []string{"date", "pump_id", "staff_id"},
		},
		inventory: recordStore[model.InventoryModel]{
			db:       db,
			table:    "inventory entry",
			notFound: domainerrors.ErrInventoryNotFound,
			orderBy:  "fuel_type",
			columns:  []string{"fuel_type", "quantity", "price_per_unit", "date"},
		},
		consumables: recordStore[model.ConsumableModel]{
			db:      db,
			table:   "consumable",
			orderBy: "created_at",
			columns: []string{"date", "name"},
		},
	}
}

func (repo *fuelRepository) ListReadings(ctx context.Context, filter repository.Filter) ([]*entity.Reading, error) {
	rows, err := repo.readings.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toReadingDomain), nil
}

func (repo *fuelRepository) CreateReading(ctx context.Context, reading *entity.Reading) error {
	if reading.ID == uuid.Nil {
		reading.ID = uuid.New()
	}

	row := &model.ReadingModel{
		ID:             reading.ID,
		PumpID:         reading.PumpID,
		Shift:          reading.Shift,
		StaffID:        reading.StaffID,
		OpeningReading: reading.OpeningReading,
		ClosingReading: reading.ClosingReading,
		Date:           reading.Date,
	}
	if err := repo.readings.insert(ctx, row); err != nil {
		return err
	}
	reading.CreatedAt = row.CreatedAt

	return nil
}

func (repo *fuelRepository) FindInventoryByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	row, err := repo.inventory.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toInventoryDomain(row), nil
}

func (repo *fuelRepository) ListInventory(ctx context.Context, filter repository.Filter) ([]*entity.InventoryItem, error) {
	rows, err := repo.inventory.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toInventoryDomain), nil
}

func (repo *fuelRepository) CreateInventory(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	row := &model.InventoryModel{
		ID:           item.ID,
		FuelType:     item.FuelType,
		Quantity:     item.Quantity,
		PricePerUnit: item.PricePerUnit,
		Date:         item.Date,
	}
	if err := repo.inventory.insert(ctx, row); err != nil {
		return err
	}
	item.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *fuelRepository) UpdateInventory(ctx context.Context, id uuid.UUID, patch repository.Patch) (*entity.InventoryItem, error) {
	row, err := repo.inventory.update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	return toInventoryDomain(row), nil
}

func (repo *fuelRepository) ListConsumables(ctx context.Context, filter repository.Filter) ([]*entity.Consumable, error) {
	rows, err := repo.consumables.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toConsumableDomain), nil
}

func (repo *fuelRepository) CreateConsumable(ctx context.Context, consumable *entity.Consumable) error {
	if consumable.ID == uuid.Nil {
		consumable.ID = uuid.New()
	}

	row := &model.ConsumableModel{
		ID:           consumable.ID,
		Name:         consumable.Name,
		Quantity:     consumable.Quantity,
		PricePerUnit: consumable.PricePerUnit,
		TotalPrice:   consumable.TotalPrice,
		Date:         consumable.Date,
	}
	if err := repo.consumables.insert(ctx, row); err != nil {
		return err
	}
	consumable.CreatedAt = row.CreatedAt

	return nil
}

func toReadingDomain(data *model.ReadingModel) *entity.Reading {
	return &entity.Reading{
		ID:             data.ID,
		PumpID:         data.PumpID,
		Shift:          data.Shift,
		StaffID:        data.StaffID,
		OpeningReading: data.OpeningReading,
		ClosingReading: data.ClosingReading,
		Date:           data.Date,
		CreatedAt:      data.CreatedAt,
	}
}

func toInventoryDomain(data *model.InventoryModel) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:           data.ID,
		FuelType:     data.FuelType,
		Quantity:     data.Quantity,
		PricePerUnit: data.PricePerUnit,
		Date:         data.Date,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toConsumableDomain(data *model.ConsumableModel) *entity.Consumable {
	return &entity.Consumable{
		ID:           data.ID,
		Name:         data.Name,
		Quantity:     data.Quantity,
		PricePerUnit: data.PricePerUnit,
		TotalPrice:   data.TotalPrice,
		Date:         data.Date,
		CreatedAt:    data.CreatedAt,
	}
}
