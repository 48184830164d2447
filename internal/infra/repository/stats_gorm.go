package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

// ダッシュボード用の集計。読み取りだけなのでTx不要
func (r *StatsGormRepository) Snapshot(ctx context.Context) (repo.DashboardStats, error) {
	var out repo.DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Product{}).Count(&out.Products).Error; err != nil {
		return repo.DashboardStats{}, err
	}
	if err := db.Model(&model.Customer{}).Count(&out.Customers).Error; err != nil {
		return repo.DashboardStats{}, err
	}
	if err := db.Model(&model.Order{}).Count(&out.Orders).Error; err != nil {
		return repo.DashboardStats{}, err
	}

	var revenue decimal.Decimal
	if err := db.Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return repo.DashboardStats{}, err
	}
	out.Revenue = revenue

	if err := db.Model(&model.Order{}).
		Where("payment_complete = ?", false).
		Count(&out.PendingOrders).Error; err != nil {
		return repo.DashboardStats{}, err
	}

	return out, nil
}
