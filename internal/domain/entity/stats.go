package entity

import "github.com/shopspring/decimal"

// DashboardStats is the back-office overview.
type DashboardStats struct {
	TotalOrders    int64                 `json:"total_orders"`
	TotalRevenue   decimal.Decimal       `json:"total_revenue"` // Paid orders only.
	OrdersByStatus map[OrderStatus]int64 `json:"orders_by_status"`
	TodayOrders    int64                 `json:"today_orders"`
	TodayRevenue   decimal.Decimal       `json:"today_revenue"`
	TotalCustomers int64                 `json:"total_customers"`
}
