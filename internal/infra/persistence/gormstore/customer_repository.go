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

type customerRepository struct {
	customers recordStore[model.CustomerModel]
	vehicles  recordStore[model.VehicleModel]
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		customers: recordStore[model.CustomerModel]{
			db:       db,
			table:    "customer",
			notFound: domainerrors.ErrCustomerNotFound,
			orderBy:  "created_at",
			columns:  []string{"name", "contact", "phone", "email", "gst", "balance"},
		},
		vehicles: recordStore[model.VehicleModel]{
			db:       db,
			table:    "vehicle",
			notFound: domainerrors.ErrVehicleNotFound,
			orderBy:  "created_at",
			columns:  []string{"customer_id", "number"},
		},
	}
}

func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	row, err := repo.customers.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCustomerDomain(row), nil
}

func (repo *customerRepository) ListCustomers(ctx context.Context, filter repository.Filter) ([]*entity.Customer, error) {
	rows, err := repo.customers.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toCustomerDomain), nil
}

func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}

	row := fromCustomerDomain(customer)
	if err := repo.customers.insert(ctx, row); err != nil {
		return err
	}
	customer.CreatedAt = row.CreatedAt

	return nil
}

func (repo *customerRepository) UpdateCustomer(ctx context.Context, id uuid.UUID, patch repository.Patch) (*entity.Customer, error) {
	row, err := repo.customers.update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	return toCustomerDomain(row), nil
}

func (repo *customerRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	row, err := repo.vehicles.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toVehicleDomain(row), nil
}

func (repo *customerRepository) ListVehicles(ctx context.Context, filter repository.Filter) ([]*entity.Vehicle, error) {
	rows, err := repo.vehicles.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toVehicleDomain), nil
}

func (repo *customerRepository) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}

	row := fromVehicleDomain(vehicle)
	if err := repo.vehicles.insert(ctx, row); err != nil {
		return err
	}
	vehicle.CreatedAt = row.CreatedAt

	return nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Contact:   data.Contact,
		Phone:     data.Phone,
		Email:     data.Email,
		GST:       data.GST,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        data.ID,
		Name:      data.Name,
		Contact:   data.Contact,
		Phone:     data.Phone,
		Email:     data.Email,
		GST:       data.GST,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
	}
}

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	return &entity.Vehicle{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Number:     data.Number,
		Type:       data.Type,
		Capacity:   data.Capacity,
		CreatedAt:  data.CreatedAt,
	}
}

func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	return &model.VehicleModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Number:     data.Number,
		Type:       data.Type,
		Capacity:   data.Capacity,
		CreatedAt:  data.CreatedAt,
	}
}
