package impl

import (
	"context"
	"testing"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/infra/auth"
	mockRepo "pumpdesk/internal/mocks/repository"
	mockSvc "pumpdesk/internal/mocks/service"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fuelPumpFixtures struct {
	service   usecase.FuelPumpUsecase
	txManager *mockRepo.MockTransactionManager
	pumpRepo  *mockRepo.MockFuelPumpRepository
}

func createTestFuelPumpService(t *testing.T) fuelPumpFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	pumpRepo := mockRepo.NewMockFuelPumpRepository(t)
	credentials := NewCredentialService(CredentialServiceParams{
		AccountRepo: mockRepo.NewMockAccountRepository(t),
		Hasher:      auth.NewSaltedHasher(),
		Metrics:     mockSvc.NewMockAuthMetrics(t),
		Logger:      newDiscardLogger(),
	})

	return fuelPumpFixtures{
		service: NewFuelPumpService(FuelPumpServiceParams{
			TxManager:   txManager,
			PumpRepo:    pumpRepo,
			Credentials: credentials,
			Config:      newTestConfig(3),
			Logger:      newDiscardLogger(),
		}),
		txManager: txManager,
		pumpRepo:  pumpRepo,
	}
}

func TestFuelPumpService_CreateFuelPump_Success(t *testing.T) {
	fx := createTestFuelPumpService(t)
	ctx := context.Background()
	input := &usecase.CreateFuelPumpInput{
		Name:     "Highway Fuels",
		Email:    "owner@example.com",
		Address:  "NH 44",
		Contact:  "9876543210",
		Password: "Owner#123",
	}

	var createdAccount *entity.Account
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txPumpRepo := mockRepo.NewMockFuelPumpRepository(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewFuelPumpRepository().Return(txPumpRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)

			txPumpRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, domainerrors.ErrPumpNotFound)
			txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, domainerrors.ErrAccountNotFound)
			txPumpRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.FuelPump")).
				Run(func(_ context.Context, pump *entity.FuelPump) { pump.ID = uuid.New() }).
				Return(nil)
			txAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(_ context.Context, account *entity.Account) { createdAccount = account }).
				Return(nil)

			return fn(mockFactory)
		})

	pump, err := fx.service.CreateFuelPump(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PumpStatusActive, pump.Status)
	assert.NotEqual(t, uuid.Nil, pump.ID)
	require.NotNil(t, createdAccount)
	assert.Equal(t, input.Email, createdAccount.Email)
	assert.Equal(t, entity.RoleAdmin, createdAccount.Role)
	assert.True(t, auth.NewSaltedHasher().Check(input.Password, createdAccount.PasswordHash, createdAccount.PasswordSalt))
}

func TestFuelPumpService_CreateFuelPump_Duplicate(t *testing.T) {
	fx := createTestFuelPumpService(t)
	ctx := context.Background()
	input := &usecase.CreateFuelPumpInput{Name: "Highway Fuels", Email: "owner@example.com", Password: "Owner#123"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txPumpRepo := mockRepo.NewMockFuelPumpRepository(t)
			mockFactory.EXPECT().NewFuelPumpRepository().Return(txPumpRepo)
			txPumpRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.FuelPump{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateFuelPump(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrPumpAlreadyExists)
}

func TestFuelPumpService_CreateFuelPump_AccountEmailTaken(t *testing.T) {
	fx := createTestFuelPumpService(t)
	ctx := context.Background()
	input := &usecase.CreateFuelPumpInput{Name: "Highway Fuels", Email: "STAFF@example.com", Password: "Owner#123"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txPumpRepo := mockRepo.NewMockFuelPumpRepository(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockFactory.EXPECT().NewFuelPumpRepository().Return(txPumpRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)

			txPumpRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, domainerrors.ErrPumpNotFound)
			txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).
				Return(&entity.Account{ID: uuid.New(), Email: "staff@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateFuelPump(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestFuelPumpService_CreateFuelPump_ShortPassword(t *testing.T) {
	fx := createTestFuelPumpService(t)

	_, err := fx.service.CreateFuelPump(context.Background(), &usecase.CreateFuelPumpInput{
		Name: "Highway Fuels", Email: "owner@example.com", Password: "abc",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestFuelPumpService_GetFuelPump_NotFound(t *testing.T) {
	fx := createTestFuelPumpService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.pumpRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrPumpNotFound)

	_, err := fx.service.GetFuelPump(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPumpNotFound)
}
