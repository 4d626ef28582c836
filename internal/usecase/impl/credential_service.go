// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pumpdesk/internal/delivery/context"
	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	metrics     service.AuthMetrics
	logger      *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Metrics     service.AuthMetrics
	Logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *credentialService) HashPassword(password, salt string) (*usecase.Credentials, error) {
	if salt != "" {
		return &usecase.Credentials{Hash: srv.hasher.HashWithSalt(password, salt), Salt: salt}, nil
	}

	hash, salt, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return &usecase.Credentials{Hash: hash, Salt: salt}, nil
}

func (srv *credentialService) VerifyPassword(password string, stored usecase.Credentials) bool {
	return srv.hasher.Check(password, stored.Hash, stored.Salt)
}

func (srv *credentialService) FindAccount(ctx context.Context, identifier string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *credentialService) UpdateCredentials(ctx context.Context, accountID uuid.UUID, credentials *usecase.Credentials) error {
	if credentials == nil || credentials.Hash == "" || credentials.Salt == "" {
		return domainerrors.ErrValidationFailed.WithDetails("hash and salt are both required")
	}

	if err := srv.accountRepo.UpdateCredentials(ctx, accountID, credentials.Hash, credentials.Salt); err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return err
		}

		return domainerrors.ErrCredentialUpdateFailed.WrapMessage(err.Error())
	}

	return nil
}

// Login verifies the password of the account matching the identifier. Unknown
// identifiers and wrong passwords are indistinguishable to the caller.
func (srv *credentialService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AccountProfile, error) {
	account, err := srv.accountRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		srv.metrics.ObserveLogin(false)
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash, account.PasswordSalt) {
		srv.metrics.ObserveLogin(false)
		srv.log(ctx).Info("Login rejected", slog.String("account_id", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.metrics.ObserveLogin(true)

	return account.Profile(), nil
}
