package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ライフサイクル操作のエラーは閉じた型の集合にする。
// 呼び出し側は文字列でなく型で分岐できる

type CustomerNotFoundError struct {
	CustomerID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %d not found", e.CustomerID)
}

type OrderNotFoundError struct {
	OrderID int64
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.OrderID)
}

type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

type AlreadyFullyPaidError struct {
	OrderID int64
}

func (e *AlreadyFullyPaidError) Error() string {
	return fmt.Sprintf("order %d is already fully paid", e.OrderID)
}

type AlreadyCancelledError struct {
	OrderID int64
}

func (e *AlreadyCancelledError) Error() string {
	return fmt.Sprintf("order %d is already cancelled", e.OrderID)
}
