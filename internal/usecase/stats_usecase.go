package usecase

import (
	"context"

	"cakes/internal/domain/entity"
)

// StatsUsecase answers the back-office dashboard.
type StatsUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}
