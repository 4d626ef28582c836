package gormstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"pumpdesk/config"
	"pumpdesk/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverSQLite
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := Open(cfg, logger)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db, cfg.Storage.Driver, logger))
	limitPool(sqlDB, cfg.Storage.Driver)

	return db
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "mysql"

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestOpen_SQLiteRequiresPath(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverSQLite

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "sqlite path is required")
}

func TestMigrate_IsRepeatable(t *testing.T) {
	db := newTestDB(t)

	err := Migrate(context.Background(), db, config.StorageDriverSQLite, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("fuel_pumps"))
	assert.True(t, db.Migrator().HasTable("transactions"))
}

func TestSeed_OnlyFillsEmptyTables(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hasher := auth.NewSaltedHasher()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Seed(ctx, db, hasher, logger))
	require.NoError(t, Seed(ctx, db, hasher, logger))

	admin, err := NewAccountRepository(db).FindByUsernameOrEmail(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, hasher.Check("admin123", admin.PasswordHash, admin.PasswordSalt))

	pump, err := NewFuelPumpRepository(db).FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "active", pump.Status)

	customers, err := NewCustomerRepository(db).ListCustomers(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	vehicles, err := NewCustomerRepository(db).ListVehicles(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)

	staff, err := NewStaffRepository(db).ListStaff(ctx, nil)
	require.NoError(t, err)
	require.Len(t, staff, 2)
	pumps := map[string][]string{}
	for _, member := range staff {
		pumps[member.Name] = member.AssignedPumps
	}
	assert.Equal(t, []string{"Pump-1", "Pump-2"}, pumps["Rahul Sharma"])
	assert.Equal(t, []string{"Pump-3"}, pumps["Priya Patel"])
}
