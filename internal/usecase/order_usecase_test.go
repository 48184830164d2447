package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLifecycleMocks() (*TxManagerMock, *OrderRepoMock, *OrderLineRepoMock, *PaymentRepoMock, *ProductRepoMock, *InventoryRepoMock, *CustomerRepoMock, *LocationRepoMock) {
	tx := new(TxManagerMock)
	orders := new(OrderRepoMock)
	lines := new(OrderLineRepoMock)
	payments := new(PaymentRepoMock)
	products := new(ProductRepoMock)
	inventory := new(InventoryRepoMock)
	customers := new(CustomerRepoMock)
	locations := new(LocationRepoMock)

	tx.Repos = &TxReposMock{
		orders:     orders,
		orderLines: lines,
		payments:   payments,
		products:   products,
		inventory:  inventory,
		customers:  customers,
		locations:  locations,
	}
	return tx, orders, lines, payments, products, inventory, customers, locations
}

func decEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// =====================
// PlaceOrder
// =====================

func TestOrderUsecase_PlaceOrder_EmptyLines(t *testing.T) {
	tx, _, _, _, _, _, _, _ := newLifecycleMocks()
	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{CustomerID: 1})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	//Txは開かれない
	assert.Empty(t, tx.Calls)
}

func TestOrderUsecase_PlaceOrder_InvalidQuantity(t *testing.T) {
	tx, _, _, _, _, _, _, _ := newLifecycleMocks()
	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 1,
		Lines:      []usecase.PlaceOrderLine{{ProductID: 3, Quantity: 0}},
	})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestOrderUsecase_PlaceOrder_DuplicateProduct(t *testing.T) {
	tx, _, _, _, _, _, _, _ := newLifecycleMocks()
	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 1,
		Lines: []usecase.PlaceOrderLine{
			{ProductID: 3, Quantity: 1},
			{ProductID: 3, Quantity: 2},
		},
	})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestOrderUsecase_PlaceOrder_InsufficientStock(t *testing.T) {
	tx, orders, _, _, products, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	products.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, CurrentQuantity: 2, UnitPrice: decimal.NewFromInt(10)}, nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 7,
		Lines:      []usecase.PlaceOrderLine{{ProductID: 1, Quantity: 5}},
	})

	var stockErr *usecase.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.ProductID)
	assert.Equal(t, int64(5), stockErr.Requested)
	assert.Equal(t, int64(2), stockErr.Available)

	//注文行は一切作られない
	assert.Empty(t, orders.Calls)
}

func TestOrderUsecase_PlaceOrder_UnknownProductReportsZeroAvailable(t *testing.T) {
	tx, _, _, _, products, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	products.On("FindByIDForUpdate", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 7,
		Lines:      []usecase.PlaceOrderLine{{ProductID: 99, Quantity: 1}},
	})

	var stockErr *usecase.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(99), stockErr.ProductID)
	assert.Equal(t, int64(0), stockErr.Available)
}

func TestOrderUsecase_PlaceOrder_CustomerNotFound(t *testing.T) {
	tx, orders, _, _, products, _, customers, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	products.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, CurrentQuantity: 10, UnitPrice: decimal.NewFromInt(10)}, nil)
	customers.On("FindByID", mock.Anything, int64(7)).
		Return(model.Customer{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 7,
		Lines:      []usecase.PlaceOrderLine{{ProductID: 1, Quantity: 1}},
	})

	var cErr *usecase.CustomerNotFoundError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, int64(7), cErr.CustomerID)
	assert.Empty(t, orders.Calls)
}

func TestOrderUsecase_PlaceOrder_Success_TotalAndLockOrder(t *testing.T) {
	tx, orders, lines, payments, products, inventory, customers, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	//単価1.25×2 + 単価3.50×3 = 13.00
	products.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, CurrentQuantity: 10, UnitPrice: decimal.NewFromFloat(1.25)}, nil)
	products.On("FindByIDForUpdate", mock.Anything, int64(2)).
		Return(model.Product{ID: 2, CurrentQuantity: 10, UnitPrice: decimal.NewFromFloat(3.50)}, nil)

	customers.On("FindByID", mock.Anything, int64(7)).Return(model.Customer{ID: 7}, nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerID == 7 && o.TotalAmount.IsZero()
	})).Return(int64(10), nil)

	lines.On("Create", mock.Anything, model.OrderLine{OrderID: 10, ProductID: 1, Quantity: 2}).Return(nil)
	lines.On("Create", mock.Anything, model.OrderLine{OrderID: 10, ProductID: 2, Quantity: 3}).Return(nil)

	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(3)).Return(true, nil)

	total := decimal.NewFromFloat(13.00)
	orders.On("UpdateTotalAmount", mock.Anything, int64(10), decEq(total)).Return(nil)

	//初期レジャー行：金額0・Pending
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 10 && p.AmountPaid.IsZero() && p.PaymentStatus == model.PaymentStatusPending
	})).Return(int64(1), nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	//明細はわざと降順で渡す
	out, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 7,
		OrderDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Lines: []usecase.PlaceOrderLine{
			{ProductID: 2, Quantity: 3},
			{ProductID: 1, Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), out.OrderID)
	assert.True(t, out.TotalAmount.Equal(total), "total=%s", out.TotalAmount)

	//ロックは商品ID昇順で取る
	require.Len(t, products.Calls, 2)
	assert.Equal(t, int64(1), products.Calls[0].Arguments.Get(1).(int64))
	assert.Equal(t, int64(2), products.Calls[1].Arguments.Get(1).(int64))

	orders.AssertExpectations(t)
	lines.AssertExpectations(t)
	payments.AssertExpectations(t)
	inventory.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_NewAddressPersisted(t *testing.T) {
	tx, orders, lines, payments, products, inventory, customers, locations := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	products.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, CurrentQuantity: 5, UnitPrice: decimal.NewFromInt(4)}, nil)
	customers.On("FindByID", mock.Anything, int64(7)).Return(model.Customer{ID: 7}, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(int64(20), nil)
	lines.On("Create", mock.Anything, mock.Anything).Return(nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(1)).Return(true, nil)
	orders.On("UpdateTotalAmount", mock.Anything, int64(20), mock.Anything).Return(nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(int64(2), nil)

	locations.On("Create", mock.Anything, model.CustomerLocation{
		CustomerID: 7,
		Address:    "2-1-1 Chuo, Osaka",
	}).Return(model.CustomerLocation{ID: 3}, nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		CustomerID: 7,
		Lines:      []usecase.PlaceOrderLine{{ProductID: 1, Quantity: 1}},
		NewAddress: "  2-1-1 Chuo, Osaka  ",
	})

	require.NoError(t, err)
	locations.AssertExpectations(t)
}

// =====================
// RecordPayment
// =====================

func TestOrderUsecase_RecordPayment_OrderNotFound(t *testing.T) {
	tx, orders, _, _, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		OrderID:    99,
		AmountPaid: decimal.NewFromInt(10),
	})

	var nf *usecase.OrderNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(99), nf.OrderID)
}

func TestOrderUsecase_RecordPayment_AlreadyFullyPaid(t *testing.T) {
	tx, orders, _, payments, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: decimal.NewFromInt(100), PaymentComplete: true}, nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		OrderID:    5,
		AmountPaid: decimal.NewFromInt(10),
	})

	var fp *usecase.AlreadyFullyPaidError
	require.ErrorAs(t, err, &fp)
	//レジャーには何も追記されない
	assert.Empty(t, payments.Calls)
}

func TestOrderUsecase_RecordPayment_PartialKeepsPending(t *testing.T) {
	tx, orders, _, payments, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: decimal.NewFromInt(100)}, nil)

	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 5 && p.AmountPaid.Equal(decimal.NewFromInt(40))
	})).Return(int64(11), nil)
	payments.On("SumActiveByOrderID", mock.Anything, int64(5)).Return(decimal.NewFromInt(40), nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	out, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		OrderID:    5,
		AmountPaid: decimal.NewFromInt(40),
	})

	require.NoError(t, err)
	assert.True(t, out.TotalPaid.Equal(decimal.NewFromInt(40)))
	assert.True(t, out.RemainingBalance.Equal(decimal.NewFromInt(60)))

	//SetPaymentCompleteは呼ばれない（呼ばれたらmockがpanicする）
	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestOrderUsecase_RecordPayment_CompletesAtTotal(t *testing.T) {
	tx, orders, _, payments, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: decimal.NewFromInt(100)}, nil)

	payments.On("Create", mock.Anything, mock.Anything).Return(int64(12), nil)
	payments.On("SumActiveByOrderID", mock.Anything, int64(5)).Return(decimal.NewFromInt(100), nil)
	orders.On("SetPaymentComplete", mock.Anything, int64(5), true).Return(nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	out, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		OrderID:    5,
		AmountPaid: decimal.NewFromInt(60),
	})

	require.NoError(t, err)
	assert.True(t, out.RemainingBalance.IsZero())
	orders.AssertExpectations(t)
}

func TestOrderUsecase_RecordPayment_OverpaymentNotClamped(t *testing.T) {
	tx, orders, _, payments, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: decimal.NewFromInt(100)}, nil)

	payments.On("Create", mock.Anything, mock.Anything).Return(int64(13), nil)
	payments.On("SumActiveByOrderID", mock.Anything, int64(5)).Return(decimal.NewFromInt(120), nil)
	orders.On("SetPaymentComplete", mock.Anything, int64(5), true).Return(nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	out, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		OrderID:    5,
		AmountPaid: decimal.NewFromInt(120),
	})

	require.NoError(t, err)
	//過払いはマイナスのまま返す
	assert.True(t, out.RemainingBalance.Equal(decimal.NewFromInt(-20)))
}

func TestOrderUsecase_RecordPayment_BlankStatusDefaultsToPaid(t *testing.T) {
	tx, orders, _, payments, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: decimal.NewFromInt(100)}, nil)

	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.PaymentStatus == model.PaymentStatusPaid
	})).Return(int64(14), nil)
	payments.On("SumActiveByOrderID", mock.Anything, int64(5)).Return(decimal.NewFromInt(10), nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		OrderID:    5,
		AmountPaid: decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	payments.AssertExpectations(t)
}

// =====================
// CancelOrder
// =====================

func TestOrderUsecase_CancelOrder_NotFound(t *testing.T) {
	tx, orders, _, _, _, _, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.CancelOrder(context.Background(), 99)

	var nf *usecase.OrderNotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOrderUsecase_CancelOrder_AlreadyCancelled(t *testing.T) {
	tx, orders, _, payments, _, inventory, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: decimal.NewFromInt(100)}, nil)
	payments.On("HasCancellation", mock.Anything, int64(5)).Return(true, nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	_, err := uc.CancelOrder(context.Background(), 5)

	var ac *usecase.AlreadyCancelledError
	require.ErrorAs(t, err, &ac)
	assert.Equal(t, int64(5), ac.OrderID)

	//在庫は一切動かさない
	assert.Empty(t, inventory.Calls)
}

func TestOrderUsecase_CancelOrder_Success_RestocksAndRefunds(t *testing.T) {
	tx, orders, lines, payments, products, inventory, _, _ := newLifecycleMocks()
	tx.On("WithinTx", mock.Anything).Return(nil)

	total := decimal.NewFromFloat(250.50)
	orders.On("FindByIDForUpdate", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, TotalAmount: total, PaymentComplete: true}, nil)
	payments.On("HasCancellation", mock.Anything, int64(5)).Return(false, nil)

	lines.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.OrderLine{
		{OrderID: 5, ProductID: 1, Quantity: 2},
		{OrderID: 5, ProductID: 3, Quantity: 4},
	}, nil)

	products.On("FindByIDForUpdate", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	products.On("FindByIDForUpdate", mock.Anything, int64(3)).Return(model.Product{ID: 3}, nil)
	inventory.On("IncreaseStock", mock.Anything, int64(1), int64(2)).Return(nil)
	inventory.On("IncreaseStock", mock.Anything, int64(3), int64(4)).Return(nil)

	//返金マーカー：-total・Cancelled
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 5 &&
			p.AmountPaid.Equal(total.Neg()) &&
			p.PaymentStatus == model.PaymentStatusCancelled
	})).Return(int64(15), nil)

	orders.On("SetPaymentComplete", mock.Anything, int64(5), false).Return(nil)

	uc := usecase.NewOrderUsecase(tx, nil)

	out, err := uc.CancelOrder(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), out.OrderID)

	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
	inventory.AssertExpectations(t)
}
