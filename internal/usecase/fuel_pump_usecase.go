package usecase

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFuelPumpInput registers a station together with its owner's login.
type CreateFuelPumpInput struct {
	Name     string
	Email    string
	Address  string
	Contact  string
	Password string
}

// FuelPumpUsecase manages the registered fuel stations.
type FuelPumpUsecase interface {
	ListFuelPumps(ctx context.Context) ([]*entity.FuelPump, error)
	GetFuelPump(ctx context.Context, id uuid.UUID) (*entity.FuelPump, error)
	// CreateFuelPump stores the pump and its admin account atomically.
	CreateFuelPump(ctx context.Context, input *CreateFuelPumpInput) (*entity.FuelPump, error)
}
