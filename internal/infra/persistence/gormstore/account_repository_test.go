package gormstore

import (
	"context"
	"testing"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAccount(t *testing.T, repo repository.AccountRepository, username, email string) *entity.Account {
	t.Helper()

	account := &entity.Account{
		Username:     username,
		Email:        email,
		Role:         entity.RoleAdmin,
		PasswordHash: "hash-" + username,
		PasswordSalt: "salt-" + username,
	}
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func TestAccountRepository_FindByUsernameOrEmail(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	created := createTestAccount(t, repo, "owner", "Owner@Example.com")
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{name: "username", key: "owner"},
		{name: "email", key: "Owner@Example.com"},
		{name: "email ignores case", key: "owner@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := repo.FindByUsernameOrEmail(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, created.ID, account.ID)
			assert.Equal(t, "hash-owner", account.PasswordHash)
			assert.Equal(t, "salt-owner", account.PasswordSalt)
		})
	}

	_, err := repo.FindByUsernameOrEmail(ctx, "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountRepository_CreateDuplicate(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	createTestAccount(t, repo, "owner", "owner@example.com")

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "same username", username: "owner", email: "other@example.com"},
		{name: "same email", username: "other", email: "owner@example.com"},
		{name: "email differing in case", username: "other", email: "OWNER@Example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(context.Background(), &entity.Account{
				Username:     tt.username,
				Email:        tt.email,
				Role:         entity.RoleStaff,
				PasswordHash: "h",
				PasswordSalt: "s",
			})
			assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
		})
	}
}

func TestAccountRepository_UpdateCredentials(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	created := createTestAccount(t, repo, "owner", "owner@example.com")
	ctx := context.Background()

	require.NoError(t, repo.UpdateCredentials(ctx, created.ID, "new-hash", "new-salt"))

	account, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", account.PasswordHash)
	assert.Equal(t, "new-salt", account.PasswordSalt)

	err = repo.UpdateCredentials(ctx, uuid.New(), "x", "y")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestFuelPumpRepository_StatusLifecycle(t *testing.T) {
	repo := NewFuelPumpRepository(newTestDB(t))
	ctx := context.Background()

	pump := &entity.FuelPump{Name: "Highway", Email: "owner@example.com"}
	require.NoError(t, repo.Create(ctx, pump))
	assert.Equal(t, entity.PumpStatusActive, pump.Status)

	require.NoError(t, repo.UpdateStatus(ctx, pump.ID, entity.PendingResetStatus("NewPass1")))

	found, err := repo.FindByEmail(ctx, "OWNER@example.com")
	require.NoError(t, err)
	password, ok := found.PendingPassword()
	require.True(t, ok)
	assert.Equal(t, "NewPass1", password)

	require.NoError(t, repo.UpdateStatus(ctx, pump.ID, entity.PumpStatusActive))
	require.NoError(t, repo.UpdateStatus(ctx, pump.ID, entity.PumpStatusActive))

	found, err = repo.FindByID(ctx, pump.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PumpStatusActive, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entity.PumpStatusActive), domainerrors.ErrPumpNotFound)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrPumpNotFound)

	err = repo.Create(ctx, &entity.FuelPump{Name: "Shadow", Email: "Owner@Example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrPumpAlreadyExists)
}
