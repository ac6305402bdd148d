// Package scheduler runs periodic jobs inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"
)

// periodicJob calls run once at start and then on every tick until the app stops. A run is cut
// off when the next tick is due, so runs never overlap.
type periodicJob struct {
	name     string
	interval time.Duration
	enabled  bool
	run      func(ctx context.Context) error
	done     chan struct{}
	logger   *slog.Logger
}

func newPeriodicJob(lc fx.Lifecycle, logger *slog.Logger, name string, interval time.Duration, enabled bool, run func(context.Context) error) *periodicJob {
	j := &periodicJob{
		name:     name,
		interval: interval,
		enabled:  enabled,
		run:      run,
		done:     make(chan struct{}),
		logger:   logger.With(slog.String("job", name)),
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(j.done)

			return nil
		},
	})

	return j
}

// Serve implements delivery.Delivery.
func (j *periodicJob) Serve(ctx context.Context) error {
	if !j.enabled || j.interval <= 0 {
		j.logger.Info("Scheduled job disabled")

		return nil
	}

	j.logger.Info("Starting scheduled job", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.runOnce(ctx)

		select {
		case <-ticker.C:
		case <-j.done:
			j.logger.Info("Stopping scheduled job")

			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (j *periodicJob) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	start := time.Now()
	if err := j.run(runCtx); err != nil {
		j.logger.Error("Scheduled run failed", slog.Any("error", err))

		return
	}

	j.logger.Debug("Scheduled run finished", slog.Duration("took", time.Since(start)))
}
