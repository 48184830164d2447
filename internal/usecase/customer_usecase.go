package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CustomerUsecase struct {
	tx        repo.TransactionManager
	customers repo.CustomerRepository
	locations repo.CustomerLocationRepository
}

func NewCustomerUsecase(
	tx repo.TransactionManager,
	customers repo.CustomerRepository,
	locations repo.CustomerLocationRepository,
) *CustomerUsecase {
	return &CustomerUsecase{tx: tx, customers: customers, locations: locations}
}

type CustomerCreateInput struct {
	Name      string
	Phone     string
	Email     string
	Addresses []string
}

type CustomerDetailOutput struct {
	model.Customer
	Addresses []model.CustomerLocation `json:"addresses"`
}

func (u *CustomerUsecase) List(ctx context.Context) ([]model.Customer, error) {
	items, err := u.customers.List(ctx)
	if err != nil {
		return []model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) Detail(ctx context.Context, id int64) (CustomerDetailOutput, error) {
	if id <= 0 {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.customers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return CustomerDetailOutput{}, &CustomerNotFoundError{CustomerID: id}
	}
	if err != nil {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	addrs, err := u.locations.ListByCustomerID(ctx, id)
	if err != nil {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CustomerDetailOutput{Customer: c, Addresses: addrs}, nil
}

func (u *CustomerUsecase) ListAddresses(ctx context.Context, id int64) ([]model.CustomerLocation, error) {
	if id <= 0 {
		return []model.CustomerLocation{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	addrs, err := u.locations.ListByCustomerID(ctx, id)
	if err != nil {
		return []model.CustomerLocation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return addrs, nil
}

// 顧客＋初期住所をまとめて1Txで作る
func (u *CustomerUsecase) Create(ctx context.Context, in CustomerCreateInput) (model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	var created model.Customer

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.Customers().Create(ctx, model.Customer{
			Name:  name,
			Phone: strings.TrimSpace(in.Phone),
			Email: strings.TrimSpace(in.Email),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, addr := range in.Addresses {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			if _, err := r.Locations().Create(ctx, model.CustomerLocation{
				CustomerID: c.ID,
				Address:    addr,
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		created = c
		return nil
	})

	if err != nil {
		return model.Customer{}, err
	}
	return created, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id int64, in CustomerCreateInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	err := u.customers.Update(ctx, model.Customer{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Email: strings.TrimSpace(in.Email),
	})
	if err == repo.ErrNotFound {
		return &CustomerNotFoundError{CustomerID: id}
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.customers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return &CustomerNotFoundError{CustomerID: id}
	}
	if err == repo.ErrConflict {
		return NewHTTPError(http.StatusConflict, "customer has existing orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
