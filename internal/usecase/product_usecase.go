package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type ProductInput struct {
	Name            string
	CurrentQuantity int64
	UnitPrice       decimal.Decimal
	ReorderPoint    int64
	SupplierID      int64
}

type ProductListItem struct {
	model.Product
	SupplierName string `json:"supplier_name"`
}

func (u *ProductUsecase) List(ctx context.Context) ([]ProductListItem, error) {
	rows, err := u.products.List(ctx)
	if err != nil {
		return []ProductListItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ProductListItem, 0, len(rows))
	for _, r := range rows {
		outs = append(outs, ProductListItem{Product: r.Product, SupplierName: r.SupplierName})
	}
	return outs, nil
}

func (u *ProductUsecase) Detail(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:            strings.TrimSpace(in.Name),
		CurrentQuantity: in.CurrentQuantity,
		UnitPrice:       in.UnitPrice,
		ReorderPoint:    in.ReorderPoint,
		SupplierID:      in.SupplierID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 在庫の直接編集は管理者の訂正パス。注文由来の増減はライフサイクル側だけが行う
func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateProductInput(in); err != nil {
		return err
	}

	err := u.products.Update(ctx, model.Product{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		CurrentQuantity: in.CurrentQuantity,
		UnitPrice:       in.UnitPrice,
		ReorderPoint:    in.ReorderPoint,
		SupplierID:      in.SupplierID,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.products.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrConflict {
		return NewHTTPError(http.StatusConflict, "product is referenced by existing orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.CurrentQuantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "current_quantity must be >= 0")
	}
	if in.UnitPrice.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "unit_price must be >= 0")
	}
	if in.ReorderPoint < 0 {
		return NewHTTPError(http.StatusBadRequest, "reorder_point must be >= 0")
	}
	return nil
}
