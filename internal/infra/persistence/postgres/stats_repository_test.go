package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"cakes/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func exactSQL(sql string) string {
	return "^" + regexp.QuoteMeta(sql) + "$"
}

func TestStatsRepository_Dashboard_QueriesAreIndependent(t *testing.T) {
	db, mock := newMockDB(t)
	dayStart := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery(exactSQL(`SELECT status, COUNT(*) AS count FROM "orders" GROUP BY "status"`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).
			AddRow("delivered", 2))
	mock.ExpectQuery(exactSQL(`SELECT COALESCE(SUM(total + wallet_used), 0) AS revenue FROM "orders" WHERE payment_status = $1`)).
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow("1250.50"))
	mock.ExpectQuery(exactSQL(`SELECT count(*) FROM "orders" WHERE created_at >= $1 AND created_at < $2`)).
		WithArgs(dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(exactSQL(`SELECT COALESCE(SUM(total + wallet_used), 0) AS revenue FROM "orders" WHERE payment_status = $1 AND created_at >= $2 AND created_at < $3`)).
		WithArgs("paid", dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow("300"))
	mock.ExpectQuery(exactSQL(`SELECT count(*) FROM "users" WHERE deleted_at IS NULL AND roles @> $1`)).
		WithArgs(`["customer"]`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	stats, err := NewStatsRepository(db).Dashboard(context.Background(), dayStart)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.OrdersByStatus[entity.OrderStatusPending])
	assert.Equal(t, "1250.50", stats.TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(4), stats.TodayOrders)
	assert.Equal(t, "300.00", stats.TodayRevenue.StringFixed(2))
	assert.Equal(t, int64(7), stats.TotalCustomers)
}
