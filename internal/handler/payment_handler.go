package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/payments の一覧・手動追記・訂正。
// ライフサイクル経由の入金は /api/customer/payment（OrderHandler）
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type PaymentCreateRequest struct {
	OrderID       int64           `json:"orderId"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentDate   string          `json:"paymentDate"`
	PaymentStatus string          `json:"paymentStatus"`
}

type PaymentCorrectRequest struct {
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentStatus string          `json:"paymentStatus"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/payments")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.correct)
}

func (h *PaymentHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) create(c echo.Context) error {
	var req PaymentCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	paymentDate, ok := parseDate(req.PaymentDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid paymentDate"})
	}

	id, err := h.uc.Create(c.Request().Context(), usecase.PaymentCreateInput{
		OrderID:       req.OrderID,
		AmountPaid:    req.AmountPaid,
		PaymentDate:   paymentDate,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "payment recorded",
		"paymentId": id,
	})
}

func (h *PaymentHandler) correct(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req PaymentCorrectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Correct(c.Request().Context(), id, usecase.PaymentCorrectInput{
		AmountPaid:    req.AmountPaid,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "payment updated"})
}
