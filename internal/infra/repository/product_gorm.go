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

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

type productListScan struct {
	ID              int64
	Name            string
	CurrentQuantity int64
	UnitPrice       decimal.Decimal
	ReorderPoint    int64
	SupplierID      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	SupplierName    string
}

func (r *ProductGormRepository) List(ctx context.Context) ([]repo.ProductListRow, error) {
	var rows []productListScan
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select(`products.id, products.name, products.current_quantity, products.unit_price,
			products.reorder_point, products.supplier_id, products.created_at, products.updated_at,
			suppliers.name AS supplier_name`).
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id").
		Order("products.id DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.ProductListRow{}, err
	}

	out := make([]repo.ProductListRow, 0, len(rows))
	for _, s := range rows {
		out = append(out, repo.ProductListRow{
			Product: model.Product{
				ID:              s.ID,
				Name:            s.Name,
				CurrentQuantity: s.CurrentQuantity,
				UnitPrice:       s.UnitPrice,
				ReorderPoint:    s.ReorderPoint,
				SupplierID:      s.SupplierID,
				CreatedAt:       s.CreatedAt,
				UpdatedAt:       s.UpdatedAt,
			},
			SupplierName: s.SupplierName,
		})
	}
	return out, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 行ロック付き取得。Tx内でのみ呼ぶこと
func (r *ProductGormRepository) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":             p.Name,
			"current_quantity": p.CurrentQuantity,
			"unit_price":       p.UnitPrice,
			"reorder_point":    p.ReorderPoint,
			"supplier_id":      p.SupplierID,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if isForeignKeyViolation(res.Error) {
		//注文明細から参照されている
		return repo.ErrConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 発注点以下を在庫少ない順に
func (r *ProductGormRepository) ListLowStock(ctx context.Context, limit int) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).
		Where("current_quantity <= reorder_point").
		Order("current_quantity asc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}
