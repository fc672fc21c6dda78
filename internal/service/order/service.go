package order

import (
	"context"

	"shop-api/internal/domain"
)

type Service struct {
	repo orderRepo
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, userID int64) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

// CreateFromCart turns the user's cart into a pending order. The repository
// runs the snapshot, totaling and cart clearing in one transaction; an empty
// cart surfaces domain.ErrEmptyCart and writes nothing.
func (s *Service) CreateFromCart(ctx context.Context, user *domain.User) (*domain.Order, error) {
	return s.repo.CreateFromCart(ctx, user.ID)
}

// Get returns an order with ownership enforced: callers only see their own
// orders unless they are admins.
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*domain.Order, error) {
	ord, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord.UserID != actor.ID && !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return ord, nil
}
