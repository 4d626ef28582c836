package usecase

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReadingInput records dispenser meters. An empty Date means today.
type CreateReadingInput struct {
	PumpID         string
	Shift          string
	StaffID        uuid.UUID
	OpeningReading float64
	ClosingReading float64
	Date           string
}

type CreateInventoryInput struct {
	FuelType     string
	Quantity     float64
	PricePerUnit float64
	Date         string
}

// UpdateInventoryInput patches the non-nil fields.
type UpdateInventoryInput struct {
	Quantity     *float64
	PricePerUnit *float64
	Date         *string
}

type CreateConsumableInput struct {
	Name         string
	Quantity     float64
	PricePerUnit float64
	Date         string
}

// FuelUsecase manages meter readings, fuel stock and consumables.
type FuelUsecase interface {
	// ListReadings returns all readings, or those of one date when date is not empty.
	ListReadings(ctx context.Context, date string) ([]*entity.Reading, error)
	CreateReading(ctx context.Context, input *CreateReadingInput) (*entity.Reading, error)
	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)
	CreateInventory(ctx context.Context, input *CreateInventoryInput) (*entity.InventoryItem, error)
	UpdateInventory(ctx context.Context, id uuid.UUID, input *UpdateInventoryInput) (*entity.InventoryItem, error)
	ListConsumables(ctx context.Context, date string) ([]*entity.Consumable, error)
	CreateConsumable(ctx context.Context, input *CreateConsumableInput) (*entity.Consumable, error)
}
