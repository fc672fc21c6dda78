package product

import (
	"context"
	"errors"
	"strings"

	"shop-api/internal/domain"
	productrepo "shop-api/internal/repository/product"
)

type Service struct {
	repo repo
}

type repo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productrepo.CreateInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

func New(r repo) *Service {
	return &Service{repo: r}
}

// Input is the validated command for admin product create/update.
type Input struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price" binding:"min=0"`
	Stock       int    `json:"stock" binding:"min=0"`
	Image       string `json:"image"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, toRepoInput(in))
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, toRepoInput(in))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validate(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if in.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	if in.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

func toRepoInput(in Input) productrepo.CreateInput {
	return productrepo.CreateInput{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Image:       in.Image,
	}
}
