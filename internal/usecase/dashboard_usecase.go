package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type DashboardUsecase struct {
	stats    repo.StatsRepository
	products repo.ProductRepository
}

func NewDashboardUsecase(stats repo.StatsRepository, products repo.ProductRepository) *DashboardUsecase {
	return &DashboardUsecase{stats: stats, products: products}
}

type DashboardOutput struct {
	Products      int64           `json:"products"`
	Customers     int64           `json:"customers"`
	Orders        int64           `json:"orders"`
	Revenue       decimal.Decimal `json:"revenue"`
	PendingOrders int64           `json:"pendingOrders"`

	LowStockProducts []model.Product `json:"lowStockProducts"`
}

const lowStockLimit = 5

func (u *DashboardUsecase) Snapshot(ctx context.Context) (DashboardOutput, error) {
	stats, err := u.stats.Snapshot(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lowStock, err := u.products.ListLowStock(ctx, lowStockLimit)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardOutput{
		Products:         stats.Products,
		Customers:        stats.Customers,
		Orders:           stats.Orders,
		Revenue:          stats.Revenue,
		PendingOrders:    stats.PendingOrders,
		LowStockProducts: lowStock,
	}, nil
}
