package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

// 追記のみ。既存行は触らない
func (r *PaymentGormRepository) Create(ctx context.Context, p model.Payment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Refunded/Cancelled以外の合計
func (r *PaymentGormRepository) SumActiveByOrderID(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Where("order_id = ? AND payment_status NOT IN ?",
			orderID,
			[]model.PaymentStatus{model.PaymentStatusRefunded, model.PaymentStatusCancelled}).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *PaymentGormRepository) HasCancellation(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("order_id = ? AND payment_status = ?", orderID, model.PaymentStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	var items []model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Payment{}, err
	}
	return items, nil
}

type paymentListScan struct {
	ID            int64
	OrderID       int64
	AmountPaid    decimal.Decimal
	PaymentDate   time.Time
	PaymentStatus model.PaymentStatus
	CreatedAt     time.Time
	CustomerName  string
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]repo.PaymentListRow, error) {
	var rows []paymentListScan
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select(`payments.id, payments.order_id, payments.amount_paid, payments.payment_date,
			payments.payment_status, payments.created_at,
			customers.name AS customer_name`).
		Joins("LEFT JOIN orders ON orders.id = payments.order_id").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Order("payments.id DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.PaymentListRow{}, err
	}

	out := make([]repo.PaymentListRow, 0, len(rows))
	for _, s := range rows {
		out = append(out, repo.PaymentListRow{
			Payment: model.Payment{
				ID:            s.ID,
				OrderID:       s.OrderID,
				AmountPaid:    s.AmountPaid,
				PaymentDate:   s.PaymentDate,
				PaymentStatus: s.PaymentStatus,
				CreatedAt:     s.CreatedAt,
			},
			CustomerName: s.CustomerName,
		})
	}
	return out, nil
}

// 金額・ステータスの訂正。レジャーの追記専用ルールの外にある管理パス
func (r *PaymentGormRepository) Correct(ctx context.Context, paymentID int64, amount decimal.Decimal, status model.PaymentStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", paymentID).
		Updates(map[string]interface{}{
			"amount_paid":    amount,
			"payment_status": status,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
