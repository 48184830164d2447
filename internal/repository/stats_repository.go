package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ダッシュボード用の集計値
type DashboardStats struct {
	Products      int64
	Customers     int64
	Orders        int64
	Revenue       decimal.Decimal
	PendingOrders int64
}

type StatsRepository interface {
	Snapshot(ctx context.Context) (DashboardStats, error)
}
