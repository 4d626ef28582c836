package repository

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountRepository persists back-office login accounts and their credentials.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsernameOrEmail matches the key against either the username or the email.
	FindByUsernameOrEmail(ctx context.Context, key string) (*entity.Account, error)

	// Create persists a new account, including its initial credentials.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateCredentials replaces the hash and salt of an account in a single write.
	UpdateCredentials(ctx context.Context, id uuid.UUID, hash, salt string) error
}
