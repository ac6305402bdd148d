package impl

import (
	"context"
	"time"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/pkg/errors"
)

type statsService struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewStatsService creates the dashboard service.
func NewStatsService(statsRepo repository.StatsRepository) usecase.StatsUsecase {
	return &statsService{statsRepo: statsRepo, now: time.Now}
}

func (srv *statsService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	now := srv.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := srv.statsRepo.Dashboard(ctx, dayStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard")
	}
	if stats.OrdersByStatus == nil {
		stats.OrdersByStatus = map[entity.OrderStatus]int64{}
	}

	return stats, nil
}
