package stats

import (
	"context"

	"shop-api/internal/domain"
)

// Counts is the dashboard overview tally.
type Counts struct {
	Users    int64
	Products int64
	Orders   int64
	Payments int64
}

type Repository interface {
	Counts(ctx context.Context) (Counts, error)
	// TopProducts ranks products by units sold across paid orders.
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	// SellStats returns per-day paid revenue for the trailing window, most
	// recent day first.
	SellStats(ctx context.Context, days int) ([]domain.SellStat, error)
}
