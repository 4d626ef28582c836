package impl

import (
	"context"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(customerRepo repository.CustomerRepository) usecase.CustomerUsecase {
	return &customerService{customerRepo: customerRepo}
}

func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return srv.customerRepo.ListCustomers(ctx, nil)
}

func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return srv.customerRepo.FindCustomerByID(ctx, id)
}

func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Email:   input.Email,
		GST:     input.GST,
		Balance: input.Balance,
	}
	if err := srv.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	patch := repository.Patch{}
	setIfPresent(patch, "name", input.Name)
	setIfPresent(patch, "contact", input.Contact)
	setIfPresent(patch, "phone", input.Phone)
	setIfPresent(patch, "email", input.Email)
	setIfPresent(patch, "gst", input.GST)
	setIfPresent(patch, "balance", input.Balance)

	customer, err := srv.customerRepo.UpdateCustomer(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

func (srv *customerService) ListVehicles(ctx context.Context, customerID *uuid.UUID) ([]*entity.Vehicle, error) {
	filter := repository.Filter{}
	if customerID != nil {
		filter["customer_id"] = *customerID
	}

	return srv.customerRepo.ListVehicles(ctx, filter)
}

func (srv *customerService) CreateVehicle(ctx context.Context, input *usecase.CreateVehicleInput) (*entity.Vehicle, error) {
	if _, err := srv.customerRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, domainerrors.ErrCustomerNotFound) {
			return nil, domainerrors.ErrInvalidReference.WithDetails("customer does not exist")
		}

		return nil, err
	}

	vehicle := &entity.Vehicle{
		CustomerID: input.CustomerID,
		Number:     input.Number,
		Type:       input.Type,
		Capacity:   input.Capacity,
	}
	if err := srv.customerRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, errors.Wrap(err, "failed to create vehicle")
	}

	return vehicle, nil
}

// setIfPresent adds a patch entry for every field the caller supplied.
func setIfPresent[T any](patch repository.Patch, column string, value *T) {
	if value != nil {
		patch[column] = *value
	}
}
