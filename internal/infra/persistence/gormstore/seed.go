package gormstore

import (
	"context"
	"log/slog"

	"pumpdesk/internal/domain/entity"
	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/errors"
	"pumpdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedAccount struct {
	username string
	email    string
	password string
	role     entity.Role
}

var seedAccounts = []seedAccount{
	{username: "admin", email: "admin@example.com", password: "admin123", role: entity.RoleAdmin},
	{username: "staff", email: "staff@example.com", password: "staff123", role: entity.RoleStaff},
}

// Seed loads the default records. Each table is only seeded while it is empty,
// so running Seed on every start is safe.
func Seed(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	steps := []struct {
		table string
		model any
		fill  func(ctx context.Context, tx *gorm.DB) error
	}{
		{"users", &model.AccountModel{}, func(ctx context.Context, tx *gorm.DB) error { return seedUsers(ctx, tx, hasher) }},
		{"fuel_pumps", &model.FuelPumpModel{}, seedFuelPumps},
		{"customers", &model.CustomerModel{}, seedCustomers},
		{"staff", &model.StaffModel{}, seedStaff},
	}

	for _, step := range steps {
		var count int64
		if err := db.WithContext(ctx).Model(step.model).Count(&count).Error; err != nil {
			return errors.Wrapf(err, "failed to count %s", step.table)
		}
		if count > 0 {
			continue
		}

		if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return step.fill(ctx, tx)
		}); err != nil {
			return errors.Wrapf(err, "failed to seed %s", step.table)
		}
		logger.InfoContext(ctx, "Seeded table", slog.String("table", step.table))
	}

	return nil
}

func seedUsers(ctx context.Context, tx *gorm.DB, hasher service.PasswordHasher) error {
	repo := NewAccountRepository(tx)
	for _, seed := range seedAccounts {
		hash, salt, err := hasher.Hash(seed.password)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &entity.Account{
			Username:     seed.username,
			Email:        seed.email,
			Role:         seed.role,
			PasswordHash: hash,
			PasswordSalt: salt,
		}); err != nil {
			return err
		}
	}

	return nil
}

func seedFuelPumps(ctx context.Context, tx *gorm.DB) error {
	return NewFuelPumpRepository(tx).Create(ctx, &entity.FuelPump{
		Name:    "Main Street Fuel Station",
		Email:   "admin@example.com",
		Address: "12 Main Street",
		Contact: "9876543210",
		Status:  entity.PumpStatusActive,
	})
}

func seedCustomers(ctx context.Context, tx *gorm.DB) error {
	repo := NewCustomerRepository(tx)
	customers := []struct {
		customer entity.Customer
		vehicles []entity.Vehicle
	}{
		{
			customer: entity.Customer{Name: "Rajesh Enterprises", Contact: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh@example.com", GST: "29ABCDE1234F1Z5", Balance: 15000},
			vehicles: []entity.Vehicle{
				{Number: "KA-01-AB-1234", Type: "Truck", Capacity: "20000L"},
				{Number: "KA-01-CD-5678", Type: "Tempo", Capacity: "5000L"},
			},
		},
		{
			customer: entity.Customer{Name: "ABC Logistics", Contact: "Anil Mehta", Phone: "8765432109", Email: "abc@example.com", GST: "27FGHIJ5678K2Z9", Balance: 8500},
			vehicles: []entity.Vehicle{
				{Number: "MH-12-GH-3456", Type: "Truck", Capacity: "15000L"},
			},
		},
	}

	for i := range customers {
		customer := &customers[i].customer
		if err := repo.CreateCustomer(ctx, customer); err != nil {
			return err
		}
		for j := range customers[i].vehicles {
			vehicle := &customers[i].vehicles[j]
			vehicle.CustomerID = customer.ID
			if err := repo.CreateVehicle(ctx, vehicle); err != nil {
				return err
			}
		}
	}

	return nil
}

func seedStaff(ctx context.Context, tx *gorm.DB) error {
	repo := NewStaffRepository(tx)
	members := []*entity.Staff{
		{ID: uuid.New(), Name: "Rahul Sharma", Phone: "9123456780", Email: "rahul@example.com", Role: "Pump Operator", Salary: 18000, JoiningDate: "2023-01-15", AssignedPumps: []string{"Pump-1", "Pump-2"}},
		{ID: uuid.New(), Name: "Priya Patel", Phone: "9123456781", Email: "priya@example.com", Role: "Cashier", Salary: 20000, JoiningDate: "2023-03-01", AssignedPumps: []string{"Pump-3"}},
	}
	for _, member := range members {
		if err := repo.CreateStaff(ctx, member); err != nil {
			return err
		}
	}

	return nil
}
