package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden indicates the actor does not own the resource or lacks the capability.
	ErrForbidden = errors.New("forbidden")
	// ErrEmptyCart is returned when an order is requested for a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAlreadyPaid is returned when settling an order that is no longer pending.
	ErrAlreadyPaid = errors.New("order already paid")
)

// InsufficientStockError names the first product whose stock could not cover
// the requested quantity. The settlement transaction it aborted is rolled
// back in full.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("not enough stock for product: %s", e.ProductName)
	}
	return fmt.Sprintf("not enough stock for product id %d", e.ProductID)
}
