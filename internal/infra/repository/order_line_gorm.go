package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderLineGormRepository struct {
	db *gorm.DB
}

func NewOrderLineGormRepository(db *gorm.DB) *OrderLineGormRepository {
	return &OrderLineGormRepository{db: db}
}

func (r *OrderLineGormRepository) Create(ctx context.Context, line model.OrderLine) error {
	return r.db.WithContext(ctx).Create(&line).Error
}

// product_id昇順（キャンセル時のロック順をここで揃える）
func (r *OrderLineGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("product_id asc").
		Find(&lines).Error
	if err != nil {
		return []model.OrderLine{}, err
	}
	return lines, nil
}

type orderLineScan struct {
	OrderID     int64
	ProductID   int64
	Quantity    int64
	CreatedAt   time.Time
	ProductName string
	UnitPrice   decimal.Decimal
}

func (r *OrderLineGormRepository) ListDetailByOrderID(ctx context.Context, orderID int64) ([]repo.OrderLineRow, error) {
	var rows []orderLineScan
	err := r.db.WithContext(ctx).Model(&model.OrderLine{}).
		Select(`order_lines.order_id, order_lines.product_id, order_lines.quantity,
			order_lines.created_at,
			products.name AS product_name, products.unit_price`).
		Joins("LEFT JOIN products ON products.id = order_lines.product_id").
		Where("order_lines.order_id = ?", orderID).
		Order("order_lines.product_id asc").
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderLineRow{}, err
	}

	out := make([]repo.OrderLineRow, 0, len(rows))
	for _, s := range rows {
		out = append(out, repo.OrderLineRow{
			Line: model.OrderLine{
				OrderID:   s.OrderID,
				ProductID: s.ProductID,
				Quantity:  s.Quantity,
				CreatedAt: s.CreatedAt,
			},
			ProductName: s.ProductName,
			UnitPrice:   s.UnitPrice,
		})
	}
	return out, nil
}
