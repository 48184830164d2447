package repository

import (
	"context"

	"app/internal/domain/model"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
}

// 顧客住所の窓口
type CustomerLocationRepository interface {
	Create(ctx context.Context, loc model.CustomerLocation) (model.CustomerLocation, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.CustomerLocation, error)
}
