package impl

import (
	"context"
	"testing"
	"time"

	"pumpdesk/internal/domain/constants"
	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/domain/service"
	mockRepo "pumpdesk/internal/mocks/repository"
	mockSvc "pumpdesk/internal/mocks/service"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

type salesFixtures struct {
	service      *salesService
	txManager    *mockRepo.MockTransactionManager
	salesRepo    *mockRepo.MockSalesRepository
	customerRepo *mockRepo.MockCustomerRepository
	idGenerator  *mockSvc.MockIDGenerator
	qrService    *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

func createTestSalesService(t *testing.T) salesFixtures {
	fx := salesFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		salesRepo:    mockRepo.NewMockSalesRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		idGenerator:  mockSvc.NewMockIDGenerator(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv, ok := NewSalesService(SalesServiceParams{
		TxManager:    fx.txManager,
		SalesRepo:    fx.salesRepo,
		CustomerRepo: fx.customerRepo,
		IDGenerator:  fx.idGenerator,
		QRService:    fx.qrService,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	}).(*salesService)
	require.True(t, ok)
	srv.now = func() time.Time { return testNow }
	fx.service = srv

	return fx
}

// expectSalesTx runs the callback against a transaction-bound sales repository.
func (fx salesFixtures) expectSalesTx(t *testing.T, txSalesRepo *mockRepo.MockSalesRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewSalesRepository().Return(txSalesRepo)

			return fn(mockFactory)
		})
}

func TestSalesService_CreateIndent(t *testing.T) {
	ctx := context.Background()
	customerID, vehicleID := uuid.New(), uuid.New()
	input := &usecase.CreateIndentInput{CustomerID: customerID, VehicleID: vehicleID, FuelType: "Diesel", Quantity: 100, Amount: 8950}

	t.Run("success", func(t *testing.T) {
		fx := createTestSalesService(t)
		fx.customerRepo.EXPECT().FindCustomerByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		fx.customerRepo.EXPECT().FindVehicleByID(ctx, vehicleID).Return(&entity.Vehicle{ID: vehicleID, CustomerID: customerID}, nil)
		fx.idGenerator.EXPECT().NewIndentID(testNow).Return("IND20240115093000-AAAA")
		fx.salesRepo.EXPECT().
			CreateIndent(ctx, mock.MatchedBy(func(indent *entity.Indent) bool {
				return indent.ID == "IND20240115093000-AAAA" && indent.Status == entity.IndentPending
			})).
			Return(nil)

		indent, err := fx.service.CreateIndent(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "IND20240115093000-AAAA", indent.ID)
	})

	t.Run("vehicle of another customer", func(t *testing.T) {
		fx := createTestSalesService(t)
		fx.customerRepo.EXPECT().FindCustomerByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		fx.customerRepo.EXPECT().FindVehicleByID(ctx, vehicleID).Return(&entity.Vehicle{ID: vehicleID, CustomerID: uuid.New()}, nil)

		_, err := fx.service.CreateIndent(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrIndentCustomerMismatch)
	})

	t.Run("unknown customer", func(t *testing.T) {
		fx := createTestSalesService(t)
		fx.customerRepo.EXPECT().FindCustomerByID(ctx, customerID).Return(nil, domainerrors.ErrCustomerNotFound)

		_, err := fx.service.CreateIndent(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}

func TestSalesService_CreateTransaction_CompletesIndent(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()
	indentID := "IND20240115093000-AAAA"
	indent := &entity.Indent{
		ID: indentID, CustomerID: uuid.New(), VehicleID: uuid.New(),
		FuelType: "Diesel", Quantity: 100, Amount: 8950, Status: entity.IndentPending,
	}

	txSalesRepo := mockRepo.NewMockSalesRepository(t)
	fx.expectSalesTx(t, txSalesRepo)
	fx.idGenerator.EXPECT().NewTransactionID(testNow).Return("TRX20240115093000-BBBB")
	txSalesRepo.EXPECT().FindIndentByID(ctx, indentID).Return(indent, nil)
	txSalesRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	txSalesRepo.EXPECT().UpdateIndentStatus(ctx, indentID, entity.IndentCompleted).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == constants.EventTransactionRecorded && event.Attributes["indent_id"] == indentID
		})).
		Return(nil)

	transaction, err := fx.service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		IndentID:      &indentID,
		PaymentMethod: "Credit",
	})

	require.NoError(t, err)
	assert.Equal(t, "TRX20240115093000-BBBB", transaction.ID)
	assert.Equal(t, "2024-01-15", transaction.Date)
	assert.Equal(t, "Diesel", transaction.FuelType)
	assert.InDelta(t, 8950.0, transaction.Amount, 1e-9)
	require.NotNil(t, transaction.CustomerID)
	assert.Equal(t, indent.CustomerID, *transaction.CustomerID)
	require.NotNil(t, transaction.VehicleID)
	assert.Equal(t, indent.VehicleID, *transaction.VehicleID)
}

func TestSalesService_CreateTransaction_IndentRules(t *testing.T) {
	ctx := context.Background()
	indentID := "IND20240115093000-AAAA"
	other := uuid.New()

	tests := []struct {
		name     string
		indent   *entity.Indent
		customer *uuid.UUID
		wantErr  error
	}{
		{
			name:    "indent already completed",
			indent:  &entity.Indent{ID: indentID, CustomerID: uuid.New(), FuelType: "Diesel", Status: entity.IndentCompleted},
			wantErr: domainerrors.ErrIndentNotPending,
		},
		{
			name:     "customer differs from indent",
			indent:   &entity.Indent{ID: indentID, CustomerID: uuid.New(), FuelType: "Diesel", Status: entity.IndentPending},
			customer: &other,
			wantErr:  domainerrors.ErrIndentCustomerMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSalesService(t)
			txSalesRepo := mockRepo.NewMockSalesRepository(t)
			fx.expectSalesTx(t, txSalesRepo)
			fx.idGenerator.EXPECT().NewTransactionID(testNow).Return("TRX20240115093000-BBBB")
			txSalesRepo.EXPECT().FindIndentByID(ctx, indentID).Return(tt.indent, nil)

			_, err := fx.service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
				IndentID:   &indentID,
				CustomerID: tt.customer,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			txSalesRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
		})
	}
}

func TestSalesService_CreateTransaction_WalkIn(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()

	txSalesRepo := mockRepo.NewMockSalesRepository(t)
	fx.expectSalesTx(t, txSalesRepo)
	fx.idGenerator.EXPECT().NewTransactionID(testNow).Return("TRX20240115093000-CCCC")
	txSalesRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	transaction, err := fx.service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		FuelType: "Petrol", Quantity: 10, Amount: 1020, PaymentMethod: "Cash", Date: "2024-01-14",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-01-14", transaction.Date)
	assert.Nil(t, transaction.IndentID)
}

func TestSalesService_CreateTransaction_InvalidDate(t *testing.T) {
	fx := createTestSalesService(t)

	_, err := fx.service.CreateTransaction(context.Background(), &usecase.CreateTransactionInput{FuelType: "Petrol", Date: "15/01/2024"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSalesService_DailySalesReport(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to today and totals", func(t *testing.T) {
		fx := createTestSalesService(t)
		fx.salesRepo.EXPECT().DailySales(ctx, "2024-01-15").Return([]*entity.FuelSales{
			{FuelType: "Diesel", Quantity: 100, Amount: 8950, TransactionCount: 1},
			{FuelType: "Petrol", Quantity: 15, Amount: 1530, TransactionCount: 2},
		}, nil)

		report, err := fx.service.DailySalesReport(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", report.Date)
		assert.InDelta(t, 115.0, report.TotalQuantity, 1e-9)
		assert.InDelta(t, 10480.0, report.TotalAmount, 1e-9)
		assert.Equal(t, int64(3), report.TransactionCount)
	})

	t.Run("empty day", func(t *testing.T) {
		fx := createTestSalesService(t)
		fx.salesRepo.EXPECT().DailySales(ctx, "2024-01-01").Return(nil, nil)

		report, err := fx.service.DailySalesReport(ctx, "2024-01-01")
		require.NoError(t, err)
		assert.NotNil(t, report.ByFuelType)
		assert.Empty(t, report.ByFuelType)
		assert.Zero(t, report.TotalAmount)
	})

	t.Run("bad date", func(t *testing.T) {
		fx := createTestSalesService(t)

		_, err := fx.service.DailySalesReport(ctx, "2024-13-01")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestSalesService_IndentQR(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()
	indent := &entity.Indent{ID: "IND20240115093000-AAAA"}

	fx.salesRepo.EXPECT().FindIndentByID(ctx, indent.ID).Return(indent, nil)
	fx.qrService.EXPECT().GenerateIndentQR(indent).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.IndentQR(ctx, indent.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
