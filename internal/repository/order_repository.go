package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 一覧用：注文＋顧客名＋キャンセル/返金情報（レジャー由来）
type OrderListRow struct {
	Order          model.Order
	CustomerName   string
	Cancelled      bool
	RefundedAmount decimal.Decimal
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//行ロック付き取得（SELECT ... FOR UPDATE）。Tx内でのみ使う
	FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error)

	//作成時のプレースホルダ0を確定額に更新する。以後は呼ばない
	UpdateTotalAmount(ctx context.Context, orderID int64, total decimal.Decimal) error

	SetPaymentComplete(ctx context.Context, orderID int64, complete bool) error

	List(ctx context.Context) ([]OrderListRow, error)
}
