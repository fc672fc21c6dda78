package dashboard

import (
	"context"

	"shop-api/internal/domain"
	statsrepo "shop-api/internal/repository/stats"
)

// Page bounds for the dashboard list endpoints.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Service struct {
	stats    statsRepo
	users    userRepo
	products productRepo
	orders   orderRepo
	payments paymentRepo
}

type statsRepo interface {
	Counts(ctx context.Context) (statsrepo.Counts, error)
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	SellStats(ctx context.Context, days int) ([]domain.SellStat, error)
}

type userRepo interface {
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
}

type orderRepo interface {
	ListPage(ctx context.Context, limit, offset int) ([]domain.Order, int64, error)
}

type paymentRepo interface {
	ListPage(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error)
}

func New(stats statsRepo, users userRepo, products productRepo, orders orderRepo, payments paymentRepo) *Service {
	return &Service{stats: stats, users: users, products: products, orders: orders, payments: payments}
}

// Overview is the landing aggregate: every product plus entity counts and the
// latest orders and payments.
type Overview struct {
	Products      []domain.Product `json:"products"`
	ProductsCount int64            `json:"products_count"`
	OrdersCount   int64            `json:"orders_count"`
	PaymentsCount int64            `json:"payments_count"`
	UsersCount    int64            `json:"users_count"`
	Orders        []domain.Order   `json:"orders"`
	Payments      []domain.Payment `json:"payments"`
}

// Page wraps a paginated list result.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	counts, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, _, err := s.orders.ListPage(ctx, DefaultPerPage, 0)
	if err != nil {
		return nil, err
	}
	payments, _, err := s.payments.ListPage(ctx, DefaultPerPage, 0)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Products:      products,
		ProductsCount: counts.Products,
		OrdersCount:   counts.Orders,
		PaymentsCount: counts.Payments,
		UsersCount:    counts.Users,
		Orders:        orders,
		Payments:      payments,
	}, nil
}

func (s *Service) Users(ctx context.Context, page, perPage int) (*Page[domain.User], error) {
	page, perPage = clampPage(page, perPage)
	items, total, err := s.users.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &Page[domain.User]{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *Service) Products(ctx context.Context, page, perPage int) (*Page[domain.Product], error) {
	page, perPage = clampPage(page, perPage)
	items, total, err := s.products.ListPage(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &Page[domain.Product]{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *Service) Orders(ctx context.Context, page, perPage int) (*Page[domain.Order], error) {
	page, perPage = clampPage(page, perPage)
	items, total, err := s.orders.ListPage(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &Page[domain.Order]{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *Service) Payments(ctx context.Context, page, perPage int) (*Page[domain.Payment], error) {
	page, perPage = clampPage(page, perPage)
	items, total, err := s.payments.ListPage(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &Page[domain.Payment]{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *Service) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit < 1 || limit > MaxPerPage {
		limit = DefaultPerPage
	}
	return s.stats.TopProducts(ctx, limit)
}

func (s *Service) SellStats(ctx context.Context, days int) ([]domain.SellStat, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	return s.stats.SellStats(ctx, days)
}

func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
