package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 明細用：明細＋商品名＋単価
type OrderLineRow struct {
	Line        model.OrderLine
	ProductName string
	UnitPrice   decimal.Decimal
}

type OrderLineRepository interface {
	Create(ctx context.Context, line model.OrderLine) error

	//product_id昇順で返す（ロック順を揃えるため）
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error)

	ListDetailByOrderID(ctx context.Context, orderID int64) ([]OrderLineRow, error)
}
