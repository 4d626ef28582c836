package impl

import (
	"context"
	"log/slog"
	"strings"

	"pumpdesk/config"
	deliverycontext "pumpdesk/internal/delivery/context"
	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fuelPumpService implements the FuelPumpUsecase interface.
type fuelPumpService struct {
	txManager         repository.TransactionManager
	pumpRepo          repository.FuelPumpRepository
	credentials       usecase.CredentialUsecase
	minPasswordLength int
	logger            *slog.Logger
}

// FuelPumpServiceParams holds dependencies for FuelPumpService, injected by Fx.
type FuelPumpServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PumpRepo    repository.FuelPumpRepository
	Credentials usecase.CredentialUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewFuelPumpService is the constructor for fuelPumpService.
func NewFuelPumpService(params FuelPumpServiceParams) usecase.FuelPumpUsecase {
	minLength := 0
	if params.Config != nil && params.Config.Auth != nil {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &fuelPumpService{
		txManager:         params.TxManager,
		pumpRepo:          params.PumpRepo,
		credentials:       params.Credentials,
		minPasswordLength: minLength,
		logger:            params.Logger,
	}
}

func (srv *fuelPumpService) ListFuelPumps(ctx context.Context) ([]*entity.FuelPump, error) {
	pumps, err := srv.pumpRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fuel pumps")
	}

	return pumps, nil
}

func (srv *fuelPumpService) GetFuelPump(ctx context.Context, id uuid.UUID) (*entity.FuelPump, error) {
	pump, err := srv.pumpRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get fuel pump")
	}

	return pump, nil
}

// CreateFuelPump registers the pump and an admin account for its owner. The
// owner logs in with the pump email as username.
func (srv *fuelPumpService) CreateFuelPump(ctx context.Context, input *usecase.CreateFuelPumpInput) (*entity.FuelPump, error) {
	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	credentials, err := srv.credentials.HashPassword(input.Password, "")
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	pump := &entity.FuelPump{
		Name:    input.Name,
		Email:   email,
		Address: input.Address,
		Contact: input.Contact,
		Status:  entity.PumpStatusActive,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pumpRepo := repoFactory.NewFuelPumpRepository()

		_, err := pumpRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrPumpAlreadyExists
		}
		if !errors.Is(err, domainerrors.ErrPumpNotFound) {
			return errors.Wrap(err, "failed to check existing fuel pump")
		}

		// Confirm correlates pump and account by email, so an existing account
		// under any casing would be rotated instead of the new owner.
		accountRepo := repoFactory.NewAccountRepository()
		_, err = accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists
		}
		if !errors.Is(err, domainerrors.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check existing account")
		}

		if err := pumpRepo.Create(ctx, pump); err != nil {
			return errors.Wrap(err, "failed to create fuel pump")
		}

		return accountRepo.Create(ctx, &entity.Account{
			Username:     email,
			Email:        email,
			Role:         entity.RoleAdmin,
			PasswordHash: credentials.Hash,
			PasswordSalt: credentials.Salt,
		})
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Fuel pump created",
		slog.String("pump_id", pump.ID.String()),
	)

	return pump, nil
}
