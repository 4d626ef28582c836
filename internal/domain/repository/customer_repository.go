package repository

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerRepository persists credit customers and their vehicles.
type CustomerRepository interface {
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	ListCustomers(ctx context.Context, filter Filter) ([]*entity.Customer, error)
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
	UpdateCustomer(ctx context.Context, id uuid.UUID, patch Patch) (*entity.Customer, error)

	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	ListVehicles(ctx context.Context, filter Filter) ([]*entity.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error
}
