package order

import (
	"context"

	"shop-api/internal/domain"
)

type Repository interface {
	// CreateFromCart snapshots the user's cart into a pending order with its
	// items and clears the cart, all in one transaction. An empty cart yields
	// domain.ErrEmptyCart with nothing written.
	CreateFromCart(ctx context.Context, userID int64) (*domain.Order, error)
	// GetByID returns the order with its items attached.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Order, int64, error)
}
