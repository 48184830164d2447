package usecase

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 注文ライフサイクル（作成・入金・キャンセル）。
// 3操作はそれぞれ1つのTxで完結し、失敗したら全部ロールバックする
type OrderUsecase struct {
	tx     repo.TransactionManager
	logger *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, logger *zap.Logger) *OrderUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUsecase{tx: tx, logger: logger}
}

type PlaceOrderLine struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	CustomerID   int64
	OrderDate    time.Time
	DeliveryDate time.Time
	DueDate      time.Time
	Lines        []PlaceOrderLine

	//空でなければ顧客の住所帳に追加する
	NewAddress string
}

type PlaceOrderOutput struct {
	OrderID     int64           `json:"orderId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if in.CustomerID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid customer_id")
	}
	if len(in.Lines) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "order lines required")
	}
	seen := make(map[int64]bool, len(in.Lines))
	for _, l := range in.Lines {
		if l.ProductID <= 0 || l.Quantity <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order line")
		}
		if seen[l.ProductID] {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "duplicate product in order lines")
		}
		seen[l.ProductID] = true
	}

	//ロック順を揃えるため商品ID昇順で処理する
	lines := make([]PlaceOrderLine, len(in.Lines))
	copy(lines, in.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//全明細ぶんの在庫を行ロック付きで確認。1つでも足りなければ全体を失敗させる
		products := make(map[int64]model.Product, len(lines))
		for _, l := range lines {
			p, err := r.Products().FindByIDForUpdate(ctx, l.ProductID)
			if err == repo.ErrNotFound {
				return &InsufficientStockError{ProductID: l.ProductID, Requested: l.Quantity, Available: 0}
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if p.CurrentQuantity < l.Quantity {
				return &InsufficientStockError{ProductID: l.ProductID, Requested: l.Quantity, Available: p.CurrentQuantity}
			}
			products[l.ProductID] = p
		}

		//顧客の存在確認
		if _, err := r.Customers().FindByID(ctx, in.CustomerID); err != nil {
			if err == repo.ErrNotFound {
				return &CustomerNotFoundError{CustomerID: in.CustomerID}
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//合計はプレースホルダ0で先に作り、IDを採番してもらう
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID:   in.CustomerID,
			OrderDate:    orderDate,
			DeliveryDate: in.DeliveryDate,
			DueDate:      in.DueDate,
			TotalAmount:  decimal.Zero,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細作成・合計加算・在庫減算
		total := decimal.Zero
		for _, l := range lines {
			if err := r.OrderLines().Create(ctx, model.OrderLine{
				OrderID:   orderID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			total = total.Add(products[l.ProductID].UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))

			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, l.ProductID, l.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				//ロック済みなので来ないはずだが、負在庫だけは絶対に通さない
				return &InsufficientStockError{ProductID: l.ProductID, Requested: l.Quantity, Available: products[l.ProductID].CurrentQuantity}
			}
		}

		if err := r.Orders().UpdateTotalAmount(ctx, orderID, total); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//新しい配送先が来ていれば住所帳へ
		if addr := strings.TrimSpace(in.NewAddress); addr != "" {
			if _, err := r.Locations().Create(ctx, model.CustomerLocation{
				CustomerID: in.CustomerID,
				Address:    addr,
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		//初期レジャー行（金額0・Pending）
		if _, err := r.Payments().Create(ctx, model.Payment{
			OrderID:       orderID,
			AmountPaid:    decimal.Zero,
			PaymentDate:   time.Now(),
			PaymentStatus: model.PaymentStatusPending,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PlaceOrderOutput{OrderID: orderID, TotalAmount: total}
		return nil
	})

	if err != nil {
		u.logger.Warn("place order rejected",
			zap.Int64("customer_id", in.CustomerID),
			zap.Error(err))
		return PlaceOrderOutput{}, err
	}

	u.logger.Info("order placed",
		zap.Int64("order_id", out.OrderID),
		zap.Int64("customer_id", in.CustomerID),
		zap.String("total_amount", out.TotalAmount.String()))
	return out, nil
}

type RecordPaymentInput struct {
	OrderID     int64
	AmountPaid  decimal.Decimal
	PaymentDate time.Time

	//空なら Paid 扱い
	PaymentStatus string
}

type RecordPaymentOutput struct {
	Message string `json:"message"`

	//入金合計（Refunded/Cancelled除く）
	TotalPaid decimal.Decimal `json:"totalPaid"`

	//残額。過払いならマイナスのまま返す（丸めない）
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

func (u *OrderUsecase) RecordPayment(ctx context.Context, in RecordPaymentInput) (RecordPaymentOutput, error) {
	if in.OrderID <= 0 {
		return RecordPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}
	//金額の正負・上限はあえて検証しない（過払い・マイナス入金も記帳する）

	status := model.PaymentStatus(strings.TrimSpace(in.PaymentStatus))
	if status == "" {
		status = model.PaymentStatusPaid
	}
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	var out RecordPaymentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文行をロックして、入金とキャンセルの競合を直列化する
		o, err := r.Orders().FindByIDForUpdate(ctx, in.OrderID)
		if err == repo.ErrNotFound {
			return &OrderNotFoundError{OrderID: in.OrderID}
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.PaymentComplete {
			return &AlreadyFullyPaidError{OrderID: in.OrderID}
		}

		//追記のみ。過去の行は書き換えない
		if _, err := r.Payments().Create(ctx, model.Payment{
			OrderID:       in.OrderID,
			AmountPaid:    in.AmountPaid,
			PaymentDate:   paymentDate,
			PaymentStatus: status,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//今の行も含めて再集計
		paid, err := r.Payments().SumActiveByOrderID(ctx, in.OrderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if paid.GreaterThanOrEqual(o.TotalAmount) {
			if err := r.Orders().SetPaymentComplete(ctx, in.OrderID, true); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		out = RecordPaymentOutput{
			Message:          "payment recorded",
			TotalPaid:        paid,
			RemainingBalance: o.TotalAmount.Sub(paid),
		}
		return nil
	})

	if err != nil {
		return RecordPaymentOutput{}, err
	}

	u.logger.Info("payment recorded",
		zap.Int64("order_id", in.OrderID),
		zap.String("amount", in.AmountPaid.String()),
		zap.String("total_paid", out.TotalPaid.String()))
	return out, nil
}

type CancelOrderOutput struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

func (u *OrderUsecase) CancelOrder(ctx context.Context, orderID int64) (CancelOrderOutput, error) {
	if orderID <= 0 {
		return CancelOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	var out CancelOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文行を先にロック（商品行より前）
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return &OrderNotFoundError{OrderID: orderID}
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//二重キャンセルガード。Cancelledのレジャー行は注文につき最大1つ
		cancelled, err := r.Payments().HasCancellation(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if cancelled {
			return &AlreadyCancelledError{OrderID: orderID}
		}

		//明細はproduct_id昇順で返る＝ロック順が注文作成側と揃う
		lines, err := r.OrderLines().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//全量戻し（部分出荷の概念はない）
		for _, l := range lines {
			if _, err := r.Products().FindByIDForUpdate(ctx, l.ProductID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.Inventory().IncreaseStock(ctx, l.ProductID, l.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		//返金マーカー（履歴は消さずに相殺行を追記する）
		if _, err := r.Payments().Create(ctx, model.Payment{
			OrderID:       orderID,
			AmountPaid:    o.TotalAmount.Neg(),
			PaymentDate:   time.Now(),
			PaymentStatus: model.PaymentStatusCancelled,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//支払済み表示から外す（total自体は履歴表示用に残す）
		if err := r.Orders().SetPaymentComplete(ctx, orderID, false); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CancelOrderOutput{Message: "order cancelled", OrderID: orderID}
		return nil
	})

	if err != nil {
		return CancelOrderOutput{}, err
	}

	u.logger.Info("order cancelled", zap.Int64("order_id", orderID))
	return out, nil
}
