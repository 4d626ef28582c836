package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"pumpdesk/config"
	deliverycontext "pumpdesk/internal/delivery/context"
	"pumpdesk/internal/domain/constants"
	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStatusClearAttempts = 3

// passwordResetService implements the PasswordResetUsecase interface.
//
// A confirmation performs two writes in order: the new credentials, then the
// pump status. They are not wrapped in one database transaction; the status
// write is idempotent and retried, and a failed retry leaves the pump pending
// so the owner can simply confirm again.
type passwordResetService struct {
	pumpRepo            repository.FuelPumpRepository
	credentials         usecase.CredentialUsecase
	accountRepo         repository.AccountRepository
	publisher           service.EventPublisher
	metrics             service.AuthMetrics
	emailLocks          *keyedMutex
	statusClearAttempts int
	minPasswordLength   int
	now                 func() time.Time
	logger              *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	PumpRepo    repository.FuelPumpRepository
	AccountRepo repository.AccountRepository
	Credentials usecase.CredentialUsecase
	Publisher   service.EventPublisher
	Metrics     service.AuthMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	attempts := defaultStatusClearAttempts
	minLength := 0
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.StatusClearRetries > 0 {
			attempts = params.Config.Auth.StatusClearRetries
		}
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &passwordResetService{
		pumpRepo:            params.PumpRepo,
		accountRepo:         params.AccountRepo,
		credentials:         params.Credentials,
		publisher:           params.Publisher,
		metrics:             params.Metrics,
		emailLocks:          newKeyedMutex(),
		statusClearAttempts: attempts,
		minPasswordLength:   minLength,
		now:                 time.Now,
		logger:              params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset stores the proposed password in the pump status.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) error {
	if len(input.NewPassword) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	pump, err := srv.pumpRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return errors.Wrap(err, "failed to find fuel pump")
	}

	if err := srv.pumpRepo.UpdateStatus(ctx, pump.ID, entity.PendingResetStatus(input.NewPassword)); err != nil {
		return errors.Wrap(err, "failed to mark fuel pump for reset")
	}

	srv.log(ctx).Info("Password reset requested", slog.String("pump_id", pump.ID.String()))

	return nil
}

// ConfirmReset validates the pending state and rotates the owner's credentials.
// No write happens unless every check passes.
func (srv *passwordResetService) ConfirmReset(ctx context.Context, input *usecase.ConfirmResetInput) error {
	if strings.TrimSpace(input.BearerToken) == "" {
		srv.metrics.ObserveResetOutcome(service.ResetOutcomeUnauthorized)

		return domainerrors.ErrUnauthorized
	}

	unlock := srv.emailLocks.Lock(strings.ToLower(strings.TrimSpace(input.Email)))
	defer unlock()

	pump, err := srv.pumpRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return srv.fail(err, "failed to find fuel pump")
	}

	pending, ok := pump.PendingPassword()
	if !ok {
		return srv.fail(domainerrors.ErrResetNotPending, "")
	}
	if subtle.ConstantTimeCompare([]byte(pending), []byte(input.NewPassword)) != 1 {
		return srv.fail(domainerrors.ErrResetMismatch, "")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return srv.fail(err, "failed to find account")
	}

	credentials, err := srv.credentials.HashPassword(input.NewPassword, "")
	if err != nil {
		return srv.fail(err, "")
	}

	if err := srv.credentials.UpdateCredentials(ctx, account.ID, credentials); err != nil {
		return srv.fail(err, "failed to store new credentials")
	}

	if err := srv.clearStatus(ctx, pump); err != nil {
		srv.metrics.ObserveResetOutcome(service.ResetOutcomePartialFailure)
		srv.log(ctx).Error("Credentials rotated but fuel pump is still pending reset",
			slog.String("pump_id", pump.ID.String()),
			slog.String("account_id", account.ID.String()),
			slog.Int("attempts", srv.statusClearAttempts),
			slog.Any("error", err),
		)

		return domainerrors.ErrStatusClearFailed
	}

	srv.metrics.ObserveResetOutcome(service.ResetOutcomeSuccess)
	srv.log(ctx).Info("Password reset confirmed",
		slog.String("pump_id", pump.ID.String()),
		slog.String("account_id", account.ID.String()),
	)
	srv.publishConfirmed(ctx, pump, account)

	return nil
}

func (srv *passwordResetService) clearStatus(ctx context.Context, pump *entity.FuelPump) error {
	var err error
	for attempt := 1; attempt <= srv.statusClearAttempts; attempt++ {
		if err = srv.pumpRepo.UpdateStatus(ctx, pump.ID, entity.PumpStatusActive); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return errors.Wrapf(err, "status clear aborted: %v", ctx.Err())
		}
		srv.log(ctx).Warn("Failed to clear fuel pump reset status",
			slog.String("pump_id", pump.ID.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
	}

	return err
}

// fail records the outcome for err and wraps it with message when given.
func (srv *passwordResetService) fail(err error, message string) error {
	srv.metrics.ObserveResetOutcome(resetOutcome(err))
	if message == "" {
		return err
	}

	return errors.Wrap(err, message)
}

func resetOutcome(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return service.ResetOutcomeUnauthorized
	case errors.Is(err, domainerrors.ErrPumpNotFound), errors.Is(err, domainerrors.ErrAccountNotFound):
		return service.ResetOutcomeNotFound
	case errors.Is(err, domainerrors.ErrResetNotPending):
		return service.ResetOutcomeInvalidState
	case errors.Is(err, domainerrors.ErrResetMismatch):
		return service.ResetOutcomeMismatch
	default:
		return service.ResetOutcomePersistence
	}
}

func (srv *passwordResetService) publishConfirmed(ctx context.Context, pump *entity.FuelPump, account *entity.Account) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventPasswordResetConfirmed,
		SubjectID:  account.ID.String(),
		OccurredAt: srv.now().UTC(),
		Attributes: map[string]string{"pump_id": pump.ID.String()},
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}
