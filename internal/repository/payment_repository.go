package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 一覧用：支払い＋顧客名
type PaymentListRow struct {
	Payment      model.Payment
	CustomerName string
}

type PaymentRepository interface {
	Create(ctx context.Context, p model.Payment) (int64, error)

	//Refunded/Cancelled以外の合計（支払済み判定に使う）
	SumActiveByOrderID(ctx context.Context, orderID int64) (decimal.Decimal, error)

	//Cancelledの行があるか（二重キャンセルガード）
	HasCancellation(ctx context.Context, orderID int64) (bool, error)

	ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error)
	List(ctx context.Context) ([]PaymentListRow, error)

	//金額・ステータスの訂正。ライフサイクル処理からは呼ばない低信頼パス
	Correct(ctx context.Context, paymentID int64, amount decimal.Decimal, status model.PaymentStatus) error
}
