package gormstore

import (
	"context"
	"testing"
	"time"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestCustomer(t *testing.T, db *gorm.DB) (*entity.Customer, *entity.Vehicle) {
	t.Helper()
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &entity.Customer{Name: "Rajesh Enterprises", Phone: "9876543210"}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	vehicle := &entity.Vehicle{CustomerID: customer.ID, Number: "KA-01-AB-1234", Type: "Truck"}
	require.NoError(t, repo.CreateVehicle(ctx, vehicle))

	return customer, vehicle
}

func TestCustomerRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()
	customer, vehicle := createTestCustomer(t, db)

	found, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Enterprises", found.Name)

	updated, err := repo.UpdateCustomer(ctx, customer.ID, repository.Patch{"balance": 2500.5, "phone": "1112223334"})
	require.NoError(t, err)
	assert.InDelta(t, 2500.5, updated.Balance, 1e-9)
	assert.Equal(t, "1112223334", updated.Phone)

	vehicles, err := repo.ListVehicles(ctx, repository.Filter{"customer_id": customer.ID})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, vehicle.ID, vehicles[0].ID)

	vehicles, err = repo.ListVehicles(ctx, repository.Filter{"customer_id": uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	_, err = repo.FindCustomerByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)

	_, err = repo.UpdateCustomer(ctx, uuid.New(), repository.Patch{"name": "x"})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerRepository_RejectsUnknownColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	customer, _ := createTestCustomer(t, db)

	_, err := repo.UpdateCustomer(context.Background(), customer.ID, repository.Patch{"id": uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = repo.ListCustomers(context.Background(), repository.Filter{"1=1; --": "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerRepository_VehicleRequiresCustomer(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	err := repo.CreateVehicle(context.Background(), &entity.Vehicle{CustomerID: uuid.New(), Number: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestStaffRepository_Shifts(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	member := &entity.Staff{Name: "Rahul Sharma", AssignedPumps: []string{"Pump-1"}}
	require.NoError(t, repo.CreateStaff(ctx, member))

	shift := &entity.Shift{
		StaffID:   member.ID,
		ShiftType: entity.ShiftMorning,
		StartTime: time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC),
		Status:    entity.ShiftStatusActive,
	}
	require.NoError(t, repo.CreateShift(ctx, shift))

	end := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)
	ended, err := repo.UpdateShift(ctx, shift.ID, repository.Patch{
		"end_time": end,
		"status":   string(entity.ShiftStatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStatusCompleted, ended.Status)
	require.NotNil(t, ended.EndTime)
	assert.True(t, end.Equal(*ended.EndTime))

	shifts, err := repo.ListShifts(ctx, repository.Filter{"staff_id": member.ID})
	require.NoError(t, err)
	assert.Len(t, shifts, 1)

	_, err = repo.FindShiftByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrShiftNotFound)
}

func TestFuelRepository_ReadingsInventoryConsumables(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRepository(db)
	ctx := context.Background()

	member := &entity.Staff{Name: "Priya Patel"}
	require.NoError(t, NewStaffRepository(db).CreateStaff(ctx, member))

	require.NoError(t, repo.CreateReading(ctx, &entity.Reading{
		PumpID: "Pump-1", Shift: "Morning", StaffID: member.ID,
		OpeningReading: 1000, ClosingReading: 1250, Date: "2024-01-15",
	}))
	require.NoError(t, repo.CreateReading(ctx, &entity.Reading{
		PumpID: "Pump-2", Shift: "Morning", StaffID: member.ID,
		OpeningReading: 500, ClosingReading: 700, Date: "2024-01-16",
	}))

	readings, err := repo.ListReadings(ctx, repository.Filter{"date": "2024-01-15"})
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.InDelta(t, 250.0, readings[0].Dispensed(), 1e-9)

	item := &entity.InventoryItem{FuelType: "Diesel", Quantity: 5000, PricePerUnit: 89.5, Date: "2024-01-15"}
	require.NoError(t, repo.CreateInventory(ctx, item))

	updated, err := repo.UpdateInventory(ctx, item.ID, repository.Patch{"quantity": 4200.0})
	require.NoError(t, err)
	assert.InDelta(t, 4200.0, updated.Quantity, 1e-9)

	_, err = repo.UpdateInventory(ctx, uuid.New(), repository.Patch{"quantity": 1.0})
	assert.ErrorIs(t, err, domainerrors.ErrInventoryNotFound)

	require.NoError(t, repo.CreateConsumable(ctx, &entity.Consumable{Name: "Engine Oil", Quantity: 2, PricePerUnit: 450, TotalPrice: 900, Date: "2024-01-15"}))
	consumables, err := repo.ListConsumables(ctx, nil)
	require.NoError(t, err)
	require.Len(t, consumables, 1)
	assert.InDelta(t, 900.0, consumables[0].TotalPrice, 1e-9)
}

func TestSalesRepository_IndentsAndDailySales(t *testing.T) {
	db := newTestDB(t)
	repo := NewSalesRepository(db)
	ctx := context.Background()
	customer, vehicle := createTestCustomer(t, db)

	indent := &entity.Indent{
		ID: "IND20240115093000-01HQ3K9ZT4E8D2AB", CustomerID: customer.ID, VehicleID: vehicle.ID,
		FuelType: "Diesel", Quantity: 100, Amount: 8950,
	}
	require.NoError(t, repo.CreateIndent(ctx, indent))
	assert.Equal(t, entity.IndentPending, indent.Status)

	indentID := indent.ID
	sales := []*entity.Transaction{
		{ID: "TRX20240115100000-A", CustomerID: &customer.ID, IndentID: &indentID, FuelType: "Diesel", Quantity: 100, Amount: 8950, PaymentMethod: "Credit", Date: "2024-01-15"},
		{ID: "TRX20240115110000-B", FuelType: "Petrol", Quantity: 10, Amount: 1020, PaymentMethod: "Cash", Date: "2024-01-15"},
		{ID: "TRX20240115120000-C", FuelType: "Petrol", Quantity: 5, Amount: 510, PaymentMethod: "UPI", Date: "2024-01-15"},
		{ID: "TRX20240116100000-D", FuelType: "Petrol", Quantity: 7, Amount: 714, PaymentMethod: "Cash", Date: "2024-01-16"},
	}
	for _, sale := range sales {
		require.NoError(t, repo.CreateTransaction(ctx, sale))
	}

	err := repo.CreateTransaction(ctx, &entity.Transaction{ID: "TRX20240115130000-E", IndentID: &indentID, FuelType: "Diesel", Date: "2024-01-15"})
	assert.ErrorIs(t, err, domainerrors.ErrIndentNotPending)

	err = repo.CreateTransaction(ctx, &entity.Transaction{ID: "TRX20240115110000-B", FuelType: "Petrol", Date: "2024-01-15"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.NotErrorIs(t, err, domainerrors.ErrIndentNotPending)

	otherIndent := &entity.Indent{ID: "IND20240115140000-Z", CustomerID: customer.ID, VehicleID: vehicle.ID, FuelType: "Diesel", Quantity: 10, Amount: 895}
	require.NoError(t, repo.CreateIndent(ctx, otherIndent))
	err = repo.CreateTransaction(ctx, &entity.Transaction{ID: "TRX20240115110000-B", IndentID: &otherIndent.ID, FuelType: "Diesel", Date: "2024-01-15"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.NotErrorIs(t, err, domainerrors.ErrIndentNotPending)

	require.NoError(t, repo.UpdateIndentStatus(ctx, indent.ID, entity.IndentCompleted))
	found, err := repo.FindIndentByID(ctx, indent.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.IndentCompleted, found.Status)

	byFuel, err := repo.DailySales(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, byFuel, 2)
	assert.Equal(t, "Diesel", byFuel[0].FuelType)
	assert.InDelta(t, 8950.0, byFuel[0].Amount, 1e-9)
	assert.Equal(t, int64(1), byFuel[0].TransactionCount)
	assert.Equal(t, "Petrol", byFuel[1].FuelType)
	assert.InDelta(t, 15.0, byFuel[1].Quantity, 1e-9)
	assert.InDelta(t, 1530.0, byFuel[1].Amount, 1e-9)
	assert.Equal(t, int64(2), byFuel[1].TransactionCount)

	empty, err := repo.DailySales(ctx, "2023-12-31")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.FindIndentByID(ctx, "IND-missing")
	assert.ErrorIs(t, err, domainerrors.ErrIndentNotFound)
	assert.ErrorIs(t, repo.UpdateIndentStatus(ctx, "IND-missing", entity.IndentCancelled), domainerrors.ErrIndentNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pumps := NewFuelPumpRepository(db)

	pump := &entity.FuelPump{Name: "Highway", Email: "owner@example.com"}
	require.NoError(t, pumps.Create(ctx, pump))

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewFuelPumpRepository().UpdateStatus(ctx, pump.ID, entity.PendingResetStatus("x")); err != nil {
			return err
		}

		return domainerrors.ErrInternalError
	})
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)

	found, err := pumps.FindByID(ctx, pump.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PumpStatusActive, found.Status)

	err = NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewFuelPumpRepository().UpdateStatus(ctx, pump.ID, entity.PendingResetStatus("x"))
	})
	require.NoError(t, err)

	found, err = pumps.FindByID(ctx, pump.ID)
	require.NoError(t, err)
	assert.True(t, found.IsPendingReset())
}

func TestStaffRepository_AssignedPumpsColumn(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)
	ctx := context.Background()

	assigned := &entity.Staff{Name: "Rahul Sharma", AssignedPumps: []string{"Pump-1", "Pump-2"}}
	unassigned := &entity.Staff{Name: "Priya Patel"}
	require.NoError(t, repo.CreateStaff(ctx, assigned))
	require.NoError(t, repo.CreateStaff(ctx, unassigned))

	found, err := repo.FindStaffByID(ctx, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pump-1", "Pump-2"}, found.AssignedPumps)

	found, err = repo.FindStaffByID(ctx, unassigned.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, found.AssignedPumps)

	var raw string
	require.NoError(t, db.Raw("SELECT CAST(assigned_pumps AS TEXT) FROM staff WHERE id = ?", unassigned.ID).Scan(&raw).Error)
	assert.Equal(t, "[]", raw)
}
