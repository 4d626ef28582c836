package impl

import (
	"context"
	"testing"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/infra/auth"
	mockRepo "pumpdesk/internal/mocks/repository"
	mockSvc "pumpdesk/internal/mocks/service"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testOwnerEmail = "owner@example.com"
	testBearer     = "token-from-client"
)

type passwordResetFixtures struct {
	service     usecase.PasswordResetUsecase
	pumpRepo    *mockRepo.MockFuelPumpRepository
	accountRepo *mockRepo.MockAccountRepository
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockAuthMetrics
	hasher      service.PasswordHasher
}

func createTestPasswordResetService(t *testing.T) passwordResetFixtures {
	pumpRepo := mockRepo.NewMockFuelPumpRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockAuthMetrics(t)
	hasher := auth.NewSaltedHasher()
	logger := newDiscardLogger()

	credentials := NewCredentialService(CredentialServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Metrics:     metrics,
		Logger:      logger,
	})

	srv := NewPasswordResetService(PasswordResetServiceParams{
		PumpRepo:    pumpRepo,
		AccountRepo: accountRepo,
		Credentials: credentials,
		Publisher:   publisher,
		Metrics:     metrics,
		Config:      newTestConfig(2),
		Logger:      logger,
	})

	return passwordResetFixtures{
		service:     srv,
		pumpRepo:    pumpRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
		metrics:     metrics,
		hasher:      hasher,
	}
}

func pendingPump(password string) *entity.FuelPump {
	return &entity.FuelPump{
		ID:     uuid.New(),
		Name:   "Highway Fuels",
		Email:  testOwnerEmail,
		Status: entity.PendingResetStatus(password),
	}
}

func ownerAccount(t *testing.T, hasher service.PasswordHasher) *entity.Account {
	hash, salt, err := hasher.Hash("OldPass1")
	require.NoError(t, err)

	return &entity.Account{
		ID:           uuid.New(),
		Username:     "owner",
		Email:        testOwnerEmail,
		Role:         entity.RoleAdmin,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
}

func TestPasswordResetService_ConfirmReset_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	pump := pendingPump("NewPass1")
	account := ownerAccount(t, fx.hasher)

	var newHash, newSalt string
	fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil).Once()
	fx.accountRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(account, nil).Once()
	fx.accountRepo.EXPECT().
		UpdateCredentials(ctx, account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ uuid.UUID, hash, salt string) {
			newHash, newSalt = hash, salt
		}).
		Return(nil).Once()
	fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, entity.PumpStatusActive).Return(nil).Once()
	fx.metrics.EXPECT().ObserveResetOutcome(service.ResetOutcomeSuccess).Return().Once()
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.SubjectID == account.ID.String() && event.Attributes["pump_id"] == pump.ID.String()
		})).
		Return(nil).Once()

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Email:       testOwnerEmail,
		NewPassword: "NewPass1",
		BearerToken: testBearer,
	})

	require.NoError(t, err)
	assert.True(t, fx.hasher.Check("NewPass1", newHash, newSalt))
	assert.False(t, fx.hasher.Check("OldPass1", newHash, newSalt))
	assert.NotEqual(t, account.PasswordSalt, newSalt)
	assert.NotEqual(t, account.PasswordHash, newHash)
}

func TestPasswordResetService_ConfirmReset_RejectsWithoutWrites(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.ConfirmResetInput
		setup       func(fx passwordResetFixtures, ctx context.Context)
		wantErr     error
		wantOutcome string
	}{
		{
			name:        "missing bearer",
			input:       usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "NewPass1"},
			setup:       func(passwordResetFixtures, context.Context) {},
			wantErr:     domainerrors.ErrUnauthorized,
			wantOutcome: service.ResetOutcomeUnauthorized,
		},
		{
			name:        "blank bearer",
			input:       usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "NewPass1", BearerToken: "   "},
			setup:       func(passwordResetFixtures, context.Context) {},
			wantErr:     domainerrors.ErrUnauthorized,
			wantOutcome: service.ResetOutcomeUnauthorized,
		},
		{
			name:  "unknown pump",
			input: usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "NewPass1", BearerToken: testBearer},
			setup: func(fx passwordResetFixtures, ctx context.Context) {
				fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(nil, domainerrors.ErrPumpNotFound)
			},
			wantErr:     domainerrors.ErrPumpNotFound,
			wantOutcome: service.ResetOutcomeNotFound,
		},
		{
			name:  "no pending reset",
			input: usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "NewPass1", BearerToken: testBearer},
			setup: func(fx passwordResetFixtures, ctx context.Context) {
				pump := pendingPump("")
				pump.Status = entity.PumpStatusActive
				fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil)
			},
			wantErr:     domainerrors.ErrResetNotPending,
			wantOutcome: service.ResetOutcomeInvalidState,
		},
		{
			name:  "password mismatch",
			input: usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "WrongPass", BearerToken: testBearer},
			setup: func(fx passwordResetFixtures, ctx context.Context) {
				fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pendingPump("NewPass1"), nil)
			},
			wantErr:     domainerrors.ErrResetMismatch,
			wantOutcome: service.ResetOutcomeMismatch,
		},
		{
			name:  "prefix of pending password",
			input: usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "NewPass", BearerToken: testBearer},
			setup: func(fx passwordResetFixtures, ctx context.Context) {
				fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pendingPump("NewPass1"), nil)
			},
			wantErr:     domainerrors.ErrResetMismatch,
			wantOutcome: service.ResetOutcomeMismatch,
		},
		{
			name:  "unknown account",
			input: usecase.ConfirmResetInput{Email: testOwnerEmail, NewPassword: "NewPass1", BearerToken: testBearer},
			setup: func(fx passwordResetFixtures, ctx context.Context) {
				fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pendingPump("NewPass1"), nil)
				fx.accountRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(nil, domainerrors.ErrAccountNotFound)
			},
			wantErr:     domainerrors.ErrAccountNotFound,
			wantOutcome: service.ResetOutcomeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPasswordResetService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)
			fx.metrics.EXPECT().ObserveResetOutcome(tt.wantOutcome).Return().Once()

			input := tt.input
			err := fx.service.ConfirmReset(ctx, &input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			fx.accountRepo.AssertNotCalled(t, "UpdateCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			fx.pumpRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPasswordResetService_ConfirmReset_RepeatedFailuresKeepState(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	pump := pendingPump("NewPass1")

	fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil).Times(3)
	fx.metrics.EXPECT().ObserveResetOutcome(service.ResetOutcomeMismatch).Return().Times(3)

	for range 3 {
		err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
			Email:       testOwnerEmail,
			NewPassword: "WrongPass",
			BearerToken: testBearer,
		})
		assert.ErrorIs(t, err, domainerrors.ErrResetMismatch)
	}

	assert.Equal(t, entity.PendingResetStatus("NewPass1"), pump.Status)
	fx.pumpRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetService_ConfirmReset_CredentialWriteFails(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	pump := pendingPump("NewPass1")
	account := ownerAccount(t, fx.hasher)

	fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(account, nil)
	fx.accountRepo.EXPECT().
		UpdateCredentials(ctx, account.ID, mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to update credentials"))
	fx.metrics.EXPECT().ObserveResetOutcome(service.ResetOutcomePersistence).Return().Once()

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Email:       testOwnerEmail,
		NewPassword: "NewPass1",
		BearerToken: testBearer,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCredentialUpdateFailed)
	fx.pumpRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetService_ConfirmReset_StatusClearRetried(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	pump := pendingPump("NewPass1")
	account := ownerAccount(t, fx.hasher)

	fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(account, nil)
	fx.accountRepo.EXPECT().UpdateCredentials(ctx, account.ID, mock.Anything, mock.Anything).Return(nil)
	fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, entity.PumpStatusActive).Return(errors.New("database is locked")).Once()
	fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, entity.PumpStatusActive).Return(nil).Once()
	fx.metrics.EXPECT().ObserveResetOutcome(service.ResetOutcomeSuccess).Return().Once()
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Email:       testOwnerEmail,
		NewPassword: "NewPass1",
		BearerToken: testBearer,
	})

	require.NoError(t, err)
}

func TestPasswordResetService_ConfirmReset_PartialFailure(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	pump := pendingPump("NewPass1")
	account := ownerAccount(t, fx.hasher)

	fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(account, nil)
	fx.accountRepo.EXPECT().UpdateCredentials(ctx, account.ID, mock.Anything, mock.Anything).Return(nil).Once()
	fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, entity.PumpStatusActive).Return(errors.New("database is locked")).Times(2)
	fx.metrics.EXPECT().ObserveResetOutcome(service.ResetOutcomePartialFailure).Return().Once()

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Email:       testOwnerEmail,
		NewPassword: "NewPass1",
		BearerToken: testBearer,
	})

	assert.ErrorIs(t, err, domainerrors.ErrStatusClearFailed)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPasswordResetService_ConfirmReset_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	pump := pendingPump("NewPass1")
	account := ownerAccount(t, fx.hasher)

	fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(account, nil)
	fx.accountRepo.EXPECT().UpdateCredentials(ctx, account.ID, mock.Anything, mock.Anything).Return(nil)
	fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, entity.PumpStatusActive).Return(nil)
	fx.metrics.EXPECT().ObserveResetOutcome(service.ResetOutcomeSuccess).Return()
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Email:       testOwnerEmail,
		NewPassword: "NewPass1",
		BearerToken: testBearer,
	})

	require.NoError(t, err)
}

func TestPasswordResetService_RequestReset(t *testing.T) {
	t.Run("marks pump pending", func(t *testing.T) {
		fx := createTestPasswordResetService(t)
		ctx := context.Background()
		pump := pendingPump("")
		pump.Status = entity.PumpStatusActive

		fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(pump, nil)
		fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, "pending_reset:NewPass1").Return(nil)

		err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: testOwnerEmail, NewPassword: "NewPass1"})
		require.NoError(t, err)
	})

	t.Run("password too short", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		err := fx.service.RequestReset(context.Background(), &usecase.RequestResetInput{Email: testOwnerEmail, NewPassword: "abc"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	})

	t.Run("unknown pump", func(t *testing.T) {
		fx := createTestPasswordResetService(t)
		ctx := context.Background()

		fx.pumpRepo.EXPECT().FindByEmail(ctx, testOwnerEmail).Return(nil, domainerrors.ErrPumpNotFound)

		err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: testOwnerEmail, NewPassword: "NewPass1"})
		assert.ErrorIs(t, err, domainerrors.ErrPumpNotFound)
	})
}

func TestPasswordResetService_ClearStatus_StopsOnCancelledContext(t *testing.T) {
	fx := createTestPasswordResetService(t)
	srv, ok := fx.service.(*passwordResetService)
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pump := pendingPump("NewPass1")
	writeErr := errors.New("database is locked")

	fx.pumpRepo.EXPECT().UpdateStatus(ctx, pump.ID, entity.PumpStatusActive).Return(writeErr).Once()

	err := srv.clearStatus(ctx, pump)

	require.ErrorIs(t, err, writeErr)
	assert.ErrorIs(t, errors.Cause(err), writeErr)
	assert.Contains(t, err.Error(), "status clear aborted: context canceled")
}
