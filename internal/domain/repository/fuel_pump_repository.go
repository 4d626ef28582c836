package repository

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// FuelPumpRepository persists fuel pumps. The pump status doubles as the
// password-reset handshake state, so UpdateStatus is the only status writer.
type FuelPumpRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FuelPump, error)

	// FindByEmail retrieves the pump registered under the owner's email.
	FindByEmail(ctx context.Context, email string) (*entity.FuelPump, error)

	List(ctx context.Context) ([]*entity.FuelPump, error)

	Create(ctx context.Context, pump *entity.FuelPump) error

	// UpdateStatus overwrites the status of a pump. Writing the same value twice is harmless.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
