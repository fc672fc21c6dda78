package httpserver

import (
	"context"

	"shop-api/internal/authz"
	"shop-api/internal/domain"
	authsvc "shop-api/internal/service/auth"
	cartsvc "shop-api/internal/service/cart"
	dashboardsvc "shop-api/internal/service/dashboard"
	productsvc "shop-api/internal/service/product"
)

// Service interfaces consumed by the handlers. Defined here so tests can
// substitute stubs without touching the concrete services.

type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
}

type SessionService interface {
	Start(ctx context.Context) (token, sessionID string, err error)
	Resolve(ctx context.Context, token string) (string, error)
	TTLSeconds() int
}

type CartService interface {
	Get(ctx context.Context, owner domain.CartOwner) ([]domain.CartItem, error)
	Add(ctx context.Context, owner domain.CartOwner, in cartsvc.ItemInput) (*domain.CartItem, error)
	Update(ctx context.Context, owner domain.CartOwner, itemID int64, in cartsvc.ItemInput) (*domain.CartItem, error)
	Remove(ctx context.Context, owner domain.CartOwner, itemID int64) error
	Clear(ctx context.Context, owner domain.CartOwner) error
	Migrate(ctx context.Context, sessionID string, userID int64) error
}

type OrderService interface {
	CreateFromCart(ctx context.Context, user *domain.User) (*domain.Order, error)
	Get(ctx context.Context, actor *domain.User, id int64) (*domain.Order, error)
}

type PaymentService interface {
	Settle(ctx context.Context, actor *domain.User, orderID int64) (*domain.Payment, error)
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type DashboardService interface {
	Overview(ctx context.Context) (*dashboardsvc.Overview, error)
	Users(ctx context.Context, page, perPage int) (*dashboardsvc.Page[domain.User], error)
	Products(ctx context.Context, page, perPage int) (*dashboardsvc.Page[domain.Product], error)
	Orders(ctx context.Context, page, perPage int) (*dashboardsvc.Page[domain.Order], error)
	Payments(ctx context.Context, page, perPage int) (*dashboardsvc.Page[domain.Payment], error)
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	SellStats(ctx context.Context, days int) ([]domain.SellStat, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	AuthSvc      AuthService
	SessionSvc   SessionService
	CartSvc      CartService
	OrderSvc     OrderService
	PaymentSvc   PaymentService
	ProductSvc   ProductService
	DashboardSvc DashboardService
	Authz        authz.Authorizer
}
