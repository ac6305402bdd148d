// Command notifier consumes order events pushed by Pub/Sub and tells customers and staff about
// them by email, WhatsApp and FCM.
package main

import (
	"context"
	"log/slog"
	"os"

	"cakes/config"
	"cakes/internal/delivery"
	"cakes/internal/delivery/worker"
	"cakes/internal/delivery/worker/handler"
	logs "cakes/internal/infra/log"
	"cakes/internal/infra/mail"
	"cakes/internal/infra/notification"
	"cakes/internal/infra/persistence/postgres"
	"cakes/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,

			// Recipients: order owner, assigned staff and their phones.
			postgres.NewOrderRepository,
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,

			// Channels.
			mail.NewMailer,
			mail.NewWhatsAppNotifier,
			notification.NewPushService,

			impl.NewNotificationService,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(run),
	).Run()
}

// run serves every delivery; the first one to fail shuts the process down through Fx so
// OnStop hooks still close the database and flush clients.
func run(ctx context.Context, params runParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Notifier delivery failed", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Graceful shutdown failed", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
