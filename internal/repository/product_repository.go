package repository

import (
	"context"

	"app/internal/domain/model"
)

// 一覧用：商品＋仕入先名
type ProductListRow struct {
	Product      model.Product
	SupplierName string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]ProductListRow, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//行ロック付き取得（SELECT ... FOR UPDATE）。Tx内でのみ使う
	FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	//発注点以下の商品を在庫少ない順にlimit件
	ListLowStock(ctx context.Context, limit int) ([]model.Product, error)
}
