package handler

import (
	"net/http"
	"time"

	"app/internal/pkg/metrics"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 注文ライフサイクルのHTTP面。
// /api/orders が作成・参照、/api/customer が入金・キャンセル（フロントの呼び出し経路に合わせる）
type OrderHandler struct {
	uc *usecase.OrderUsecase
	m  *metrics.LifecycleMetrics
}

func NewOrderHandler(uc *usecase.OrderUsecase, m *metrics.LifecycleMetrics) *OrderHandler {
	return &OrderHandler{uc: uc, m: m}
}

type OrderLineRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type OrderCreateRequest struct {
	CustomerID   int64              `json:"customerId"`
	OrderDate    string             `json:"orderDate"`
	DeliveryDate string             `json:"deliveryDate"`
	DueDate      string             `json:"dueDate"`
	Products     []OrderLineRequest `json:"products"`
	NewAddress   string             `json:"newAddress"`
}

type PaymentRecordRequest struct {
	OrderID       int64           `json:"orderId"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentDate   string          `json:"paymentDate"`
	PaymentStatus string          `json:"paymentStatus"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/api/orders")
	orders.POST("", h.create)
	orders.GET("", h.list)
	orders.GET("/:id", h.detail)

	customer := e.Group("/api/customer")
	customer.POST("/payment", h.recordPayment)
	customer.POST("/cancel/:orderId", h.cancel)
}

// 日付は "2006-01-02"。空はゼロ値扱い
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderDate, ok := parseDate(req.OrderDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid orderDate"})
	}
	deliveryDate, ok := parseDate(req.DeliveryDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid deliveryDate"})
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid dueDate"})
	}

	lines := make([]usecase.PlaceOrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, usecase.PlaceOrderLine{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerID:   req.CustomerID,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		DueDate:      dueDate,
		Lines:        lines,
		NewAddress:   req.NewAddress,
	})
	if err != nil {
		h.m.OperationErrors.WithLabelValues("place_order").Inc()
		return writeError(c, err)
	}

	h.m.OrdersPlaced.Inc()
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) recordPayment(c echo.Context) error {
	var req PaymentRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	paymentDate, ok := parseDate(req.PaymentDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid paymentDate"})
	}

	out, err := h.uc.RecordPayment(c.Request().Context(), usecase.RecordPaymentInput{
		OrderID:       req.OrderID,
		AmountPaid:    req.AmountPaid,
		PaymentDate:   paymentDate,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		h.m.OperationErrors.WithLabelValues("record_payment").Inc()
		return writeError(c, err)
	}

	h.m.PaymentsRecorded.Inc()
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid orderId"})
	}

	out, err := h.uc.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		h.m.OperationErrors.WithLabelValues("cancel_order").Inc()
		return writeError(c, err)
	}

	h.m.OrdersCancelled.Inc()
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
