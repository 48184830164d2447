package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductUsecase_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.ProductInput
	}{
		{"名前が空", usecase.ProductInput{Name: "  ", UnitPrice: decimal.NewFromInt(1)}},
		{"在庫がマイナス", usecase.ProductInput{Name: "rice", CurrentQuantity: -1, UnitPrice: decimal.NewFromInt(1)}},
		{"単価がマイナス", usecase.ProductInput{Name: "rice", UnitPrice: decimal.NewFromInt(-1)}},
		{"発注点がマイナス", usecase.ProductInput{Name: "rice", UnitPrice: decimal.NewFromInt(1), ReorderPoint: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := new(ProductRepoMock)
			uc := usecase.NewProductUsecase(products)

			_, err := uc.Create(context.Background(), tt.in)

			he, ok := usecase.AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Status)
			assert.Empty(t, products.Calls)
		})
	}
}

func TestProductUsecase_Create_TrimsName(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "rice 5kg"
	})).Return(model.Product{ID: 1, Name: "rice 5kg"}, nil)

	uc := usecase.NewProductUsecase(products)

	created, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:      "  rice 5kg  ",
		UnitPrice: decimal.NewFromFloat(12.50),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	products.AssertExpectations(t)
}

func TestProductUsecase_Detail_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewProductUsecase(products)

	_, err := uc.Detail(context.Background(), 99)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestProductUsecase_Update_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	uc := usecase.NewProductUsecase(products)

	err := uc.Update(context.Background(), 99, usecase.ProductInput{
		Name:      "rice",
		UnitPrice: decimal.NewFromInt(1),
	})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestProductUsecase_List_JoinsSupplierName(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("List", mock.Anything).Return([]repo.ProductListRow{
		{Product: model.Product{ID: 1, Name: "rice"}, SupplierName: "acme foods"},
	}, nil)

	uc := usecase.NewProductUsecase(products)

	items, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rice", items[0].Name)
	assert.Equal(t, "acme foods", items[0].SupplierName)
}
