package cart

import (
	"context"
	"errors"

	"shop-api/internal/domain"
)

type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	Get(ctx context.Context, owner domain.CartOwner) ([]domain.CartItem, error)
	Upsert(ctx context.Context, owner domain.CartOwner, productID int64, quantity int, priceCents int64) (*domain.CartItem, error)
	Update(ctx context.Context, owner domain.CartOwner, itemID int64, quantity int, priceCents int64) (*domain.CartItem, error)
	Remove(ctx context.Context, owner domain.CartOwner, itemID int64) error
	Clear(ctx context.Context, owner domain.CartOwner) error
	Migrate(ctx context.Context, sessionID string, userID int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, productRepo: products}
}

// ItemInput is the validated command for cart add/update calls.
type ItemInput struct {
	ProductID  int64 `json:"product_id" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required,min=1"`
	PriceCents int64 `json:"price" binding:"min=0"`
}

func (s *Service) Get(ctx context.Context, owner domain.CartOwner) ([]domain.CartItem, error) {
	return s.repo.Get(ctx, owner)
}

// Add merges the product into the owner's cart. Quantity and price arrive
// validated at the boundary; the product must exist.
func (s *Service) Add(ctx context.Context, owner domain.CartOwner, in ItemInput) (*domain.CartItem, error) {
	if in.Quantity < 1 {
		return nil, errors.New("quantity must be positive")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, owner, in.ProductID, in.Quantity, in.PriceCents)
}

func (s *Service) Update(ctx context.Context, owner domain.CartOwner, itemID int64, in ItemInput) (*domain.CartItem, error) {
	if in.Quantity < 1 {
		return nil, errors.New("quantity must be positive")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	return s.repo.Update(ctx, owner, itemID, in.Quantity, in.PriceCents)
}

func (s *Service) Remove(ctx context.Context, owner domain.CartOwner, itemID int64) error {
	return s.repo.Remove(ctx, owner, itemID)
}

func (s *Service) Clear(ctx context.Context, owner domain.CartOwner) error {
	return s.repo.Clear(ctx, owner)
}

// Migrate moves a guest session cart into the user's durable cart. An empty
// or missing session cart is a no-op.
func (s *Service) Migrate(ctx context.Context, sessionID string, userID int64) error {
	if sessionID == "" {
		return nil
	}
	return s.repo.Migrate(ctx, sessionID, userID)
}
