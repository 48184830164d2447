package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderListItem struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	OrderDate       time.Time       `json:"order_date"`
	DeliveryDate    time.Time       `json:"delivery_date"`
	DueDate         time.Time       `json:"due_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentComplete bool            `json:"payment_complete"`

	//レジャー由来（Cancelled行の有無と返金額）
	Cancelled      bool            `json:"cancelled"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
}

type OrderLineDTO struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
}

type OrderDetailOutput struct {
	OrderListItem
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email"`
	Lines         []OrderLineDTO  `json:"lines"`
	Payments      []model.Payment `json:"payments"`
}

func (u *OrderUsecase) List(ctx context.Context) ([]OrderListItem, error) {
	var outs []OrderListItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		rows, err := r.Orders().List(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderListItem, 0, len(rows))
		for _, row := range rows {
			outs = append(outs, toOrderListItem(row))
		}
		return nil
	})

	if err != nil {
		return []OrderListItem{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) Detail(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return &OrderNotFoundError{OrderID: orderID}
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		c, err := r.Customers().FindByID(ctx, o.CustomerID)
		if err != nil && err != repo.ErrNotFound {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines, err := r.OrderLines().ListDetailByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		payments, err := r.Payments().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cancelled := false
		refunded := decimal.Zero
		for _, p := range payments {
			if p.PaymentStatus == model.PaymentStatusCancelled {
				cancelled = true
				refunded = p.AmountPaid.Abs()
			}
		}

		lineDTOs := make([]OrderLineDTO, 0, len(lines))
		for _, l := range lines {
			lineDTOs = append(lineDTOs, OrderLineDTO{
				ProductID:   l.Line.ProductID,
				ProductName: l.ProductName,
				UnitPrice:   l.UnitPrice,
				Quantity:    l.Line.Quantity,
			})
		}

		out = OrderDetailOutput{
			OrderListItem: OrderListItem{
				ID:              o.ID,
				CustomerID:      o.CustomerID,
				CustomerName:    c.Name,
				OrderDate:       o.OrderDate,
				DeliveryDate:    o.DeliveryDate,
				DueDate:         o.DueDate,
				TotalAmount:     o.TotalAmount,
				PaymentComplete: o.PaymentComplete,
				Cancelled:       cancelled,
				RefundedAmount:  refunded,
			},
			CustomerPhone: c.Phone,
			CustomerEmail: c.Email,
			Lines:         lineDTOs,
			Payments:      payments,
		}
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

func toOrderListItem(row repo.OrderListRow) OrderListItem {
	return OrderListItem{
		ID:              row.Order.ID,
		CustomerID:      row.Order.CustomerID,
		CustomerName:    row.CustomerName,
		OrderDate:       row.Order.OrderDate,
		DeliveryDate:    row.Order.DeliveryDate,
		DueDate:         row.Order.DueDate,
		TotalAmount:     row.Order.TotalAmount,
		PaymentComplete: row.Order.PaymentComplete,
		Cancelled:       row.Cancelled,
		RefundedAmount:  row.RefundedAmount,
	}
}
