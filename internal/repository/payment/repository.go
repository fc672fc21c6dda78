package payment

import (
	"context"

	"shop-api/internal/domain"
	"github.com/jackc/pgx/v5"
)

// StockDecrementer is the stock ledger primitive used inside the settlement
// transaction. The product repository implements it.
type StockDecrementer interface {
	TryDecrementStock(ctx context.Context, tx pgx.Tx, productID int64, quantity int) error
}

type Repository interface {
	// Settle runs the pending->paid transition for the order in a single
	// transaction: re-checks the status under a row lock, decrements stock for
	// every item, marks the order paid and records the payment. On any failure
	// the whole transaction rolls back. Returns domain.ErrAlreadyPaid when the
	// order is not pending and *domain.InsufficientStockError when an item's
	// stock does not cover its quantity.
	Settle(ctx context.Context, orderID int64, transactionID string) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error)
}
