package product

import (
	"context"
	"errors"

	"shop-api/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ErrInsufficientStock is returned by TryDecrementStock when the product's
// stock does not cover the requested quantity. No partial decrement occurs.
var ErrInsufficientStock = errors.New("insufficient stock")

type CreateInput struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Image       string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in CreateInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)

	// TryDecrementStock checks stock >= quantity and decrements in one
	// statement inside the caller's transaction. Zero rows updated means
	// ErrInsufficientStock.
	TryDecrementStock(ctx context.Context, tx pgx.Tx, productID int64, quantity int) error
}
