package repository

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// FuelRepository persists meter readings, fuel stock and consumables.
type FuelRepository interface {
	ListReadings(ctx context.Context, filter Filter) ([]*entity.Reading, error)
	CreateReading(ctx context.Context, reading *entity.Reading) error

	FindInventoryByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	ListInventory(ctx context.Context, filter Filter) ([]*entity.InventoryItem, error)
	CreateInventory(ctx context.Context, item *entity.InventoryItem) error
	UpdateInventory(ctx context.Context, id uuid.UUID, patch Patch) (*entity.InventoryItem, error)

	ListConsumables(ctx context.Context, filter Filter) ([]*entity.Consumable, error)
	CreateConsumable(ctx context.Context, consumable *entity.Consumable) error
}
