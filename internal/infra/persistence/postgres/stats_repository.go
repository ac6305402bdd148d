package postgres

import (
	"context"
	"encoding/json"
	"time"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository. Its queries go to the read replica when one is configured.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// revenueExpr counts what the customer paid in money and wallet credit.
const revenueExpr = "COALESCE(SUM(total + wallet_used), 0) AS revenue"

type revenueRow struct {
	Revenue decimal.Decimal
}

func (repo *statsRepository) Dashboard(ctx context.Context, dayStart time.Time) (*entity.DashboardStats, error) {
	// A fresh session clones the statement per query so filters do not leak between them.
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Session(&gorm.Session{})
	stats := &entity.DashboardStats{
		OrdersByStatus: make(map[entity.OrderStatus]int64),
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}
	for _, row := range byStatus {
		stats.OrdersByStatus[entity.OrderStatus(row.Status)] = row.Count
		stats.TotalOrders += row.Count
	}

	var revenue revenueRow
	if err := db.Model(&model.OrderModel{}).
		Select(revenueExpr).
		Where("payment_status = ?", string(entity.PaymentStatusPaid)).
		Scan(&revenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	stats.TotalRevenue = revenue.Revenue

	dayEnd := dayStart.Add(24 * time.Hour)
	if err := db.Model(&model.OrderModel{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&stats.TodayOrders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count today's orders")
	}

	var todayRevenue revenueRow
	if err := db.Model(&model.OrderModel{}).
		Select(revenueExpr).
		Where("payment_status = ? AND created_at >= ? AND created_at < ?", string(entity.PaymentStatusPaid), dayStart, dayEnd).
		Scan(&todayRevenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum today's revenue")
	}
	stats.TodayRevenue = todayRevenue.Revenue

	customerRole, err := json.Marshal([]string{string(entity.RoleCustomer)})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := db.Model(&model.UserModel{}).
		Where("deleted_at IS NULL AND roles @> ?", datatypes.JSON(customerRole)).
		Count(&stats.TotalCustomers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	return stats, nil
}
