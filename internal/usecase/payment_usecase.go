package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 支払い台帳の参照と管理向けの訂正。
// ライフサイクル（入金・キャンセル）は OrderUsecase 側で、こちらは通さない
type PaymentUsecase struct {
	payments repo.PaymentRepository
	orders   repo.OrderRepository
}

func NewPaymentUsecase(payments repo.PaymentRepository, orders repo.OrderRepository) *PaymentUsecase {
	return &PaymentUsecase{payments: payments, orders: orders}
}

type PaymentListItem struct {
	model.Payment
	CustomerName string `json:"customer_name"`
}

type PaymentCreateInput struct {
	OrderID       int64
	AmountPaid    decimal.Decimal
	PaymentDate   time.Time
	PaymentStatus string
}

type PaymentCorrectInput struct {
	AmountPaid    decimal.Decimal
	PaymentStatus string
}

func (u *PaymentUsecase) List(ctx context.Context) ([]PaymentListItem, error) {
	rows, err := u.payments.List(ctx)
	if err != nil {
		return []PaymentListItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]PaymentListItem, 0, len(rows))
	for _, r := range rows {
		outs = append(outs, PaymentListItem{Payment: r.Payment, CustomerName: r.CustomerName})
	}
	return outs, nil
}

// 台帳への生の追記。支払済みフラグの再計算はしない低信頼パス
func (u *PaymentUsecase) Create(ctx context.Context, in PaymentCreateInput) (int64, error) {
	if in.OrderID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}
	status := model.PaymentStatus(strings.TrimSpace(in.PaymentStatus))
	if status == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "payment_status required")
	}
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	if _, err := u.orders.FindByID(ctx, in.OrderID); err != nil {
		if err == repo.ErrNotFound {
			return 0, &OrderNotFoundError{OrderID: in.OrderID}
		}
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	id, err := u.payments.Create(ctx, model.Payment{
		OrderID:       in.OrderID,
		AmountPaid:    in.AmountPaid,
		PaymentDate:   paymentDate,
		PaymentStatus: status,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

// 金額訂正。台帳の追記専用ルールの外にある管理パス
func (u *PaymentUsecase) Correct(ctx context.Context, paymentID int64, in PaymentCorrectInput) error {
	if paymentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	status := model.PaymentStatus(strings.TrimSpace(in.PaymentStatus))
	if status == "" {
		return NewHTTPError(http.StatusBadRequest, "payment_status required")
	}

	err := u.payments.Correct(ctx, paymentID, in.AmountPaid, status)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
