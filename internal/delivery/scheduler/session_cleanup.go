package scheduler

import (
	"log/slog"

	"cakes/config"
	"cakes/internal/delivery"
	"cakes/internal/usecase"

	"go.uber.org/fx"
)

// SessionCleanupParams holds dependencies for the session cleanup job, injected by Fx.
type SessionCleanupParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// NewSessionCleanup creates the job that purges expired refresh tokens.
func NewSessionCleanup(params SessionCleanupParams) delivery.Delivery {
	return newPeriodicJob(params.Lc, params.Logger, "session-cleanup", params.Cfg.Auth.SessionCleanupInterval, true,
		params.Sessions.CleanupExpiredSessions)
}
