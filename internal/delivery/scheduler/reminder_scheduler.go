package scheduler

import (
	"context"
	"log/slog"
	"time"

	"cakes/config"
	"cakes/internal/delivery"
	"cakes/internal/usecase"

	"go.uber.org/fx"
)

// ReminderSchedulerParams holds dependencies for the reminder scheduler, injected by Fx.
type ReminderSchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Reminders usecase.ReminderUsecase
}

// NewReminderScheduler creates the job that sends due event reminders on every tick.
func NewReminderScheduler(params ReminderSchedulerParams) delivery.Delivery {
	return newReminderJob(params, time.Now)
}

func newReminderJob(params ReminderSchedulerParams, now func() time.Time) *periodicJob {
	var job *periodicJob
	job = newPeriodicJob(params.Lc, params.Logger, "event-reminders", params.Cfg.Reminder.Interval, params.Cfg.Reminder.Enabled,
		func(ctx context.Context) error {
			sent, err := params.Reminders.SendDueReminders(ctx, now())
			if err != nil {
				return err
			}
			if sent > 0 {
				job.logger.Info("Event reminders sent", slog.Int("sent", sent))
			}

			return nil
		})

	return job
}
