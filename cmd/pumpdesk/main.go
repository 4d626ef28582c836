package main

import (
	"context"
	"log/slog"
	"os"

	"pumpdesk/config"
	"pumpdesk/internal/delivery"
	"pumpdesk/internal/delivery/api"
	apimiddleware "pumpdesk/internal/delivery/api/middleware"
	"pumpdesk/internal/delivery/api/router/handler"
	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/infra/auth"
	"pumpdesk/internal/infra/idgen"
	logs "pumpdesk/internal/infra/log"
	"pumpdesk/internal/infra/metrics"
	"pumpdesk/internal/infra/persistence/gormstore"
	"pumpdesk/internal/infra/pubsub"
	"pumpdesk/internal/infra/qrcode"
	"pumpdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormstore.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewAccountRepository,
			gormstore.NewFuelPumpRepository,
			gormstore.NewCustomerRepository,
			gormstore.NewStaffRepository,
			gormstore.NewFuelRepository,
			gormstore.NewSalesRepository,
			gormstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSaltedHasher,
			idgen.New,
			pubsub.NewEventPublisher,
			newQRCodeService,
			newAuthMetrics,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newAuthMetrics exposes the Prometheus instruments to the use cases.
func newAuthMetrics(m *metrics.Metrics) service.AuthMetrics {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewPasswordResetService,
			impl.NewFuelPumpService,
			impl.NewCustomerService,
			impl.NewStaffService,
			impl.NewFuelService,
			impl.NewSalesService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewBearerMiddleware,
			apimiddleware.NewAdminGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFuelPumpHandler,
			handler.NewCustomerHandler,
			handler.NewStaffHandler,
			handler.NewFuelHandler,
			handler.NewSalesHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
