// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// Credentials is a salted digest together with the salt it was derived from.
type Credentials struct {
	Hash string
	Salt string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	// Identifier is either the username or the email address.
	Identifier string
	Password   string
}

// CredentialUsecase owns password hashing, verification and the account lookups around them.
type CredentialUsecase interface {
	// HashPassword derives credentials for password. An empty salt draws a fresh one.
	HashPassword(password, salt string) (*Credentials, error)
	// VerifyPassword recomputes the digest with the stored salt.
	VerifyPassword(password string, stored Credentials) bool
	FindAccount(ctx context.Context, identifier string) (*entity.Account, error)
	// UpdateCredentials writes hash and salt of an account in a single update.
	UpdateCredentials(ctx context.Context, accountID uuid.UUID, credentials *Credentials) error
	Login(ctx context.Context, input *LoginInput) (*entity.AccountProfile, error)
}
