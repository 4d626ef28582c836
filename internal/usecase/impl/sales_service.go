package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "pumpdesk/internal/delivery/context"
	"pumpdesk/internal/domain/constants"
	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// salesService implements the SalesUsecase interface.
type salesService struct {
	txManager    repository.TransactionManager
	salesRepo    repository.SalesRepository
	customerRepo repository.CustomerRepository
	idGenerator  service.IDGenerator
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// SalesServiceParams holds dependencies for SalesService, injected by Fx.
type SalesServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SalesRepo    repository.SalesRepository
	CustomerRepo repository.CustomerRepository
	IDGenerator  service.IDGenerator
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSalesService is the constructor for salesService.
func NewSalesService(params SalesServiceParams) usecase.SalesUsecase {
	return &salesService{
		txManager:    params.TxManager,
		salesRepo:    params.SalesRepo,
		customerRepo: params.CustomerRepo,
		idGenerator:  params.IDGenerator,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *salesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *salesService) ListIndents(ctx context.Context, customerID *uuid.UUID) ([]*entity.Indent, error) {
	filter := repository.Filter{}
	if customerID != nil {
		filter["customer_id"] = *customerID
	}

	return srv.salesRepo.ListIndents(ctx, filter)
}

func (srv *salesService) GetIndent(ctx context.Context, id string) (*entity.Indent, error) {
	return srv.salesRepo.FindIndentByID(ctx, id)
}

// CreateIndent issues a pending indent for a vehicle of the customer.
func (srv *salesService) CreateIndent(ctx context.Context, input *usecase.CreateIndentInput) (*entity.Indent, error) {
	if _, err := srv.customerRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	vehicle, err := srv.customerRepo.FindVehicleByID(ctx, input.VehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vehicle")
	}
	if vehicle.CustomerID != input.CustomerID {
		return nil, domainerrors.ErrIndentCustomerMismatch.WithDetails("vehicle belongs to another customer")
	}

	indent := &entity.Indent{
		ID:         srv.idGenerator.NewIndentID(srv.now()),
		CustomerID: input.CustomerID,
		VehicleID:  input.VehicleID,
		FuelType:   input.FuelType,
		Quantity:   input.Quantity,
		Amount:     input.Amount,
		Status:     entity.IndentPending,
	}
	if err := srv.salesRepo.CreateIndent(ctx, indent); err != nil {
		return nil, errors.Wrap(err, "failed to create indent")
	}

	srv.log(ctx).Info("Indent created", slog.String("indent_id", indent.ID))

	return indent, nil
}

func (srv *salesService) IndentQR(ctx context.Context, id string) ([]byte, error) {
	indent, err := srv.salesRepo.FindIndentByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find indent")
	}

	png, err := srv.qrService.GenerateIndentQR(indent)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (srv *salesService) ListTransactions(ctx context.Context, date string) ([]*entity.Transaction, error) {
	filter, err := dateFilter(date)
	if err != nil {
		return nil, err
	}

	return srv.salesRepo.ListTransactions(ctx, filter)
}

// CreateTransaction records a sale. An indent sale checks the indent is still
// pending and marks it completed within the same database transaction.
func (srv *salesService) CreateTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	now := srv.now()
	date, err := resolveDate(input.Date, func() time.Time { return now })
	if err != nil {
		return nil, err
	}

	transaction := &entity.Transaction{
		ID:            srv.idGenerator.NewTransactionID(now),
		CustomerID:    input.CustomerID,
		VehicleID:     input.VehicleID,
		StaffID:       input.StaffID,
		IndentID:      input.IndentID,
		Amount:        input.Amount,
		Quantity:      input.Quantity,
		FuelType:      input.FuelType,
		PaymentMethod: input.PaymentMethod,
		Date:          date,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		salesRepo := repoFactory.NewSalesRepository()

		if transaction.IndentID != nil {
			indent, err := salesRepo.FindIndentByID(ctx, *transaction.IndentID)
			if err != nil {
				return errors.Wrap(err, "failed to find indent")
			}
			if err := applyIndent(transaction, indent); err != nil {
				return err
			}
		}

		if transaction.FuelType == "" {
			return domainerrors.ErrValidationFailed.WithDetails("fuel_type is required")
		}

		if err := salesRepo.CreateTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		if transaction.IndentID != nil {
			if err := salesRepo.UpdateIndentStatus(ctx, *transaction.IndentID, entity.IndentCompleted); err != nil {
				return errors.Wrap(err, "failed to complete indent")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishRecorded(ctx, transaction)

	return transaction, nil
}

// applyIndent fills the transaction from a pending indent.
func applyIndent(transaction *entity.Transaction, indent *entity.Indent) error {
	if indent.Status != entity.IndentPending {
		return domainerrors.ErrIndentNotPending
	}
	if transaction.CustomerID != nil && *transaction.CustomerID != indent.CustomerID {
		return domainerrors.ErrIndentCustomerMismatch
	}

	customerID, vehicleID := indent.CustomerID, indent.VehicleID
	transaction.CustomerID = &customerID
	if transaction.VehicleID == nil {
		transaction.VehicleID = &vehicleID
	}
	if transaction.FuelType == "" {
		transaction.FuelType = indent.FuelType
	}
	if transaction.Quantity == 0 {
		transaction.Quantity = indent.Quantity
	}
	if transaction.Amount == 0 {
		transaction.Amount = indent.Amount
	}

	return nil
}

func (srv *salesService) DailySalesReport(ctx context.Context, date string) (*entity.DailySalesReport, error) {
	date, err := resolveDate(date, srv.now)
	if err != nil {
		return nil, err
	}

	byFuel, err := srv.salesRepo.DailySales(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily sales")
	}

	return entity.NewDailySalesReport(date, byFuel), nil
}

func (srv *salesService) publishRecorded(ctx context.Context, transaction *entity.Transaction) {
	attributes := map[string]string{
		"fuel_type": transaction.FuelType,
		"amount":    strconv.FormatFloat(transaction.Amount, 'f', 2, 64),
		"date":      transaction.Date,
	}
	if transaction.IndentID != nil {
		attributes["indent_id"] = *transaction.IndentID
	}

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventTransactionRecorded,
		SubjectID:  transaction.ID,
		OccurredAt: srv.now().UTC(),
		Attributes: attributes,
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}
