package usecase

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateCustomerInput struct {
	Name    string
	Contact string
	Phone   string
	Email   string
	GST     string
	Balance float64
}

// UpdateCustomerInput patches the non-nil fields.
type UpdateCustomerInput struct {
	Name    *string
	Contact *string
	Phone   *string
	Email   *string
	GST     *string
	Balance *float64
}

type CreateVehicleInput struct {
	CustomerID uuid.UUID
	Number     string
	Type       string
	Capacity   string
}

// CustomerUsecase manages credit customers and their vehicles.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error)
	// ListVehicles returns every vehicle, or those of one customer when customerID is set.
	ListVehicles(ctx context.Context, customerID *uuid.UUID) ([]*entity.Vehicle, error)
	CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error)
}
