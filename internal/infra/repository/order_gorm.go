package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 行ロック付き取得。Tx内でのみ呼ぶこと
func (r *OrderGormRepository) FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateTotalAmount(ctx context.Context, orderID int64, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) SetPaymentComplete(ctx context.Context, orderID int64, complete bool) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("payment_complete", complete)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Scan用のフラット構造体（JOINとサブクエリの列を受ける）
type orderListScan struct {
	ID              int64
	CustomerID      int64
	OrderDate       time.Time
	DeliveryDate    time.Time
	DueDate         time.Time
	TotalAmount     decimal.Decimal
	PaymentComplete bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CustomerName    string
	CancelledCount  int64
	RefundedAmount  decimal.Decimal
}

func (r *OrderGormRepository) List(ctx context.Context) ([]repo.OrderListRow, error) {
	var rows []orderListScan
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(`orders.id, orders.customer_id, orders.order_date, orders.delivery_date,
			orders.due_date, orders.total_amount, orders.payment_complete,
			orders.created_at, orders.updated_at,
			customers.name AS customer_name,
			(SELECT COUNT(*) FROM payments
				WHERE payments.order_id = orders.id AND payments.payment_status = ?) AS cancelled_count,
			(SELECT COALESCE(ABS(SUM(amount_paid)), 0) FROM payments
				WHERE payments.order_id = orders.id AND payments.payment_status = ?) AS refunded_amount`,
			model.PaymentStatusCancelled, model.PaymentStatusCancelled).
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Order("orders.id DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderListRow{}, err
	}

	out := make([]repo.OrderListRow, 0, len(rows))
	for _, s := range rows {
		out = append(out, repo.OrderListRow{
			Order: model.Order{
				ID:              s.ID,
				CustomerID:      s.CustomerID,
				OrderDate:       s.OrderDate,
				DeliveryDate:    s.DeliveryDate,
				DueDate:         s.DueDate,
				TotalAmount:     s.TotalAmount,
				PaymentComplete: s.PaymentComplete,
				CreatedAt:       s.CreatedAt,
				UpdatedAt:       s.UpdatedAt,
			},
			CustomerName:   s.CustomerName,
			Cancelled:      s.CancelledCount > 0,
			RefundedAmount: s.RefundedAmount,
		})
	}
	return out, nil
}
