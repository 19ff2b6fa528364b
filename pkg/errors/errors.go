package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrItemNotFound is returned when an add-to-cart references a product
// that is not in the loaded catalog
type ErrItemNotFound struct {
	ProductID string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("product not found in catalog: %s", e.ProductID)
}

// ErrValidation is returned when checkout form validation fails.
// Fields maps every failing field name to its message; validation does
// not short-circuit, so all failures are reported together.
type ErrValidation struct {
	Fields map[string]string
}

func (e *ErrValidation) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// ErrEmptyCart is returned when checkout is attempted on an empty cart
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrUnknownCoupon is returned when a coupon code is not in the coupon
// table. Distinct from "no coupon applied", which is not an error.
type ErrUnknownCoupon struct {
	Code string
}

func (e *ErrUnknownCoupon) Error() string {
	return fmt.Sprintf("unknown coupon code: %s", e.Code)
}

// ErrNetwork is returned when a catalog or order call fails at the
// transport level
type ErrNetwork struct {
	Op  string
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err)
}

func (e *ErrNetwork) Unwrap() error {
	return e.Err
}

// ErrTimeout is returned when an order submission exceeds its deadline
type ErrTimeout struct {
	Op      string
	Elapsed time.Duration
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Op, e.Elapsed)
}

// ErrServerRejected is returned when the order endpoint answers with an
// explicit error payload
type ErrServerRejected struct {
	Message string
}

func (e *ErrServerRejected) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order rejected by server: %s", e.Message)
	}
	return "order rejected by server"
}

// ErrStorage is returned when the persistent store fails; the session
// degrades to in-memory-only operation afterwards
type ErrStorage struct {
	Op  string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *ErrStorage) Unwrap() error {
	return e.Err
}
