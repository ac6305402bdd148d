package impl

import (
	"context"
	"testing"
	"time"

	"cakes/internal/domain/entity"
	mockRepo "cakes/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Dashboard(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	svc := NewStatsService(statsRepo).(*statsService)
	loc := time.FixedZone("IST", 5*3600+1800)
	svc.now = func() time.Time { return time.Date(2026, time.October, 15, 0, 30, 0, 0, loc) }
	ctx := context.Background()

	statsRepo.EXPECT().Dashboard(ctx, time.Date(2026, time.October, 15, 0, 0, 0, 0, loc)).
		Return(&entity.DashboardStats{TotalOrders: 3, TotalRevenue: decimal.NewFromInt(2700)}, nil)

	stats, err := svc.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.NotNil(t, stats.OrdersByStatus)
	assert.Empty(t, stats.OrdersByStatus)
}
