package main

import (
	"context"
	"log/slog"
	"os"

	"cakes/config"
	"cakes/internal/delivery"
	"cakes/internal/delivery/api"
	"cakes/internal/delivery/api/middleware"
	"cakes/internal/delivery/api/router/handler"
	"cakes/internal/delivery/scheduler"
	"cakes/internal/infra/auth"
	"cakes/internal/infra/auth/google"
	"cakes/internal/infra/export"
	logs "cakes/internal/infra/log"
	"cakes/internal/infra/mail"
	"cakes/internal/infra/notification"
	"cakes/internal/infra/payment"
	"cakes/internal/infra/persistence/postgres"
	"cakes/internal/infra/pubsub"
	"cakes/internal/infra/qrcode"
	"cakes/internal/infra/realtime"
	"cakes/internal/infra/storage"
	"cakes/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewCategoryRepository,
			postgres.NewCakeRepository,
			postgres.NewAddonRepository,
			postgres.NewDeliveryAreaRepository,
			postgres.NewPromoCodeRepository,
			postgres.NewOrderRepository,
			postgres.NewWalletRepository,
			postgres.NewReviewRepository,
			postgres.NewReminderRepository,
			postgres.NewNavigationRepository,
			postgres.NewPageRepository,
			postgres.NewStatsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			notification.NewPushService,
			qrcode.NewQRCodeService,
			export.NewOrderExporter,
			mail.NewMailer,
			mail.NewWhatsAppNotifier,
			payment.NewPhonePeGateway,
			pubsub.NewEventPublisher,
			storage.NewFileStorage,
			realtime.NewHub,
			realtime.NewBroadcaster,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewDeviceService,
			impl.NewCatalogService,
			impl.NewLocationService,
			impl.NewPromoService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewDispatchService,
			impl.NewPaymentService,
			impl.NewWalletService,
			impl.NewReviewService,
			impl.NewReminderService,
			impl.NewCMSService,
			impl.NewUploadService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
			handler.NewCatalogHandler,
			handler.NewLocationHandler,
			handler.NewPromoHandler,
			handler.NewOrderHandler,
			handler.NewDispatchHandler,
			handler.NewPaymentHandler,
			handler.NewWalletHandler,
			handler.NewReviewHandler,
			handler.NewReminderHandler,
			handler.NewCMSHandler,
			handler.NewUploadHandler,
			handler.NewStatsHandler,
			handler.NewRealtimeHandler,
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
			fx.Annotate(
				scheduler.NewReminderScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewSessionCleanup,
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
