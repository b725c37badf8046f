package sales

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/optica/backend/internal/domain/shared"
)

// ErrEmptyCart is returned when a checkout is attempted with no line items.
// Rejected before any persistence is touched.
var ErrEmptyCart = shared.NewDomainError("EMPTY_CART", "Cart must contain at least one item")

// ProductNotFoundError is returned when a cart line references an unknown
// product. The whole checkout is rolled back.
type ProductNotFoundError struct {
	ProductID uuid.UUID
}

// Error implements the error interface
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// CustomerPersistenceError wraps a data-store failure while resolving or
// creating the customer. Fatal to the whole sale.
type CustomerPersistenceError struct {
	Err error
}

// Error implements the error interface
func (e *CustomerPersistenceError) Error() string {
	return fmt.Sprintf("could not resolve customer: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *CustomerPersistenceError) Unwrap() error {
	return e.Err
}

// SalePersistenceError wraps a data-store failure while writing the sale
// header or its lines. Fatal to the whole sale.
type SalePersistenceError struct {
	Err error
}

// Error implements the error interface
func (e *SalePersistenceError) Error() string {
	return fmt.Sprintf("could not persist sale: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *SalePersistenceError) Unwrap() error {
	return e.Err
}
