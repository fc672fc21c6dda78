package cart

import (
	"context"

	"shop-api/internal/domain"
)

// Repository stores cart line items for both guest sessions and registered
// users. Rows are partitioned by owner; there is no cross-owner visibility.
type Repository interface {
	// Get returns the owner's items, oldest first. Absence is an empty slice.
	Get(ctx context.Context, owner domain.CartOwner) ([]domain.CartItem, error)
	// Upsert merges by (owner, product): an existing line gains quantity and
	// takes the latest submitted price, otherwise a new line is inserted.
	Upsert(ctx context.Context, owner domain.CartOwner, productID int64, quantity int, priceCents int64) (*domain.CartItem, error)
	// Update replaces quantity and price of an owned line item.
	Update(ctx context.Context, owner domain.CartOwner, itemID int64, quantity int, priceCents int64) (*domain.CartItem, error)
	// Remove deletes an owned line item.
	Remove(ctx context.Context, owner domain.CartOwner, itemID int64) error
	// Clear deletes all items for the owner. Clearing an empty cart is a no-op.
	Clear(ctx context.Context, owner domain.CartOwner) error
	// Migrate merges every session item into the user's cart with the same
	// by-product rule, then clears the session cart, in one transaction.
	Migrate(ctx context.Context, sessionID string, userID int64) error
}
