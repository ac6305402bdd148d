package repository

import (
	"context"
	"time"

	"cakes/internal/domain/entity"
)

// StatsRepository answers back-office reporting queries.
type StatsRepository interface {
	// Dashboard aggregates orders and customers; "today" is [dayStart, dayStart+24h).
	Dashboard(ctx context.Context, dayStart time.Time) (*entity.DashboardStats, error)
}
