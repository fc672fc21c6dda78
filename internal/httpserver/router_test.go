package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/internal/authz"
	"shop-api/internal/domain"
	authsvc "shop-api/internal/service/auth"
	cartsvc "shop-api/internal/service/cart"
	dashboardsvc "shop-api/internal/service/dashboard"
	productsvc "shop-api/internal/service/product"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// stubAuthSvc resolves any token "user-token" to user and "admin-token" to
// admin, mirroring how the middleware sees the world.
type stubAuthSvc struct {
	user        *domain.User
	admin       *domain.User
	registered  *domain.User
	registerErr error
	loginErr    error
	logoutErr   error
}

func (s *stubAuthSvc) Register(_ context.Context, _ authsvc.RegisterInput) (*domain.User, error) {
	return s.registered, s.registerErr
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return s.user, "access-token", nil
}

func (s *stubAuthSvc) Logout(_ context.Context, _ string) error {
	return s.logoutErr
}

func (s *stubAuthSvc) LookupByToken(_ context.Context, token string) (*domain.User, error) {
	switch token {
	case "user-token":
		if s.user != nil {
			return s.user, nil
		}
	case "admin-token":
		if s.admin != nil {
			return s.admin, nil
		}
	}
	return nil, authsvc.ErrInvalidToken
}

type stubSessionSvc struct {
	sessionID string
	startErr  error
}

func (s *stubSessionSvc) Start(_ context.Context) (string, string, error) {
	if s.startErr != nil {
		return "", "", s.startErr
	}
	return "session-token", s.sessionID, nil
}

func (s *stubSessionSvc) Resolve(_ context.Context, token string) (string, error) {
	if token == "session-token" && s.sessionID != "" {
		return s.sessionID, nil
	}
	return "", domain.ErrNotFound
}

func (s *stubSessionSvc) TTLSeconds() int { return 3600 }

type stubCartSvc struct {
	items      []domain.CartItem
	item       *domain.CartItem
	err        error
	lastOwner  domain.CartOwner
	migrateSID string
	migrateUID int64
}

func (s *stubCartSvc) Get(_ context.Context, owner domain.CartOwner) ([]domain.CartItem, error) {
	s.lastOwner = owner
	return s.items, s.err
}

func (s *stubCartSvc) Add(_ context.Context, owner domain.CartOwner, _ cartsvc.ItemInput) (*domain.CartItem, error) {
	s.lastOwner = owner
	return s.item, s.err
}

func (s *stubCartSvc) Update(_ context.Context, owner domain.CartOwner, _ int64, _ cartsvc.ItemInput) (*domain.CartItem, error) {
	s.lastOwner = owner
	return s.item, s.err
}

func (s *stubCartSvc) Remove(_ context.Context, owner domain.CartOwner, _ int64) error {
	s.lastOwner = owner
	return s.err
}

func (s *stubCartSvc) Clear(_ context.Context, owner domain.CartOwner) error {
	s.lastOwner = owner
	return s.err
}

func (s *stubCartSvc) Migrate(_ context.Context, sessionID string, userID int64) error {
	s.migrateSID = sessionID
	s.migrateUID = userID
	return s.err
}

type stubOrderSvc struct {
	order *domain.Order
	err   error
}

func (s *stubOrderSvc) CreateFromCart(_ context.Context, _ *domain.User) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) Get(_ context.Context, _ *domain.User, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

type stubPaymentSvc struct {
	payment *domain.Payment
	err     error
}

func (s *stubPaymentSvc) Settle(_ context.Context, _ *domain.User, _ int64) (*domain.Payment, error) {
	return s.payment, s.err
}

type stubProductSvc struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubProductSvc) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductSvc) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) Create(_ context.Context, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) Update(_ context.Context, _ int64, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) Delete(_ context.Context, _ int64) error {
	return s.err
}

type stubDashboardSvc struct {
	overview *dashboardsvc.Overview
	err      error
}

func (s *stubDashboardSvc) Overview(_ context.Context) (*dashboardsvc.Overview, error) {
	return s.overview, s.err
}

func (s *stubDashboardSvc) Users(_ context.Context, page, perPage int) (*dashboardsvc.Page[domain.User], error) {
	return &dashboardsvc.Page[domain.User]{Page: page, PerPage: perPage}, s.err
}

func (s *stubDashboardSvc) Products(_ context.Context, page, perPage int) (*dashboardsvc.Page[domain.Product], error) {
	return &dashboardsvc.Page[domain.Product]{Page: page, PerPage: perPage}, s.err
}

func (s *stubDashboardSvc) Orders(_ context.Context, page, perPage int) (*dashboardsvc.Page[domain.Order], error) {
	return &dashboardsvc.Page[domain.Order]{Page: page, PerPage: perPage}, s.err
}

func (s *stubDashboardSvc) Payments(_ context.Context, page, perPage int) (*dashboardsvc.Page[domain.Payment], error) {
	return &dashboardsvc.Page[domain.Payment]{Page: page, PerPage: perPage}, s.err
}

func (s *stubDashboardSvc) TopProducts(_ context.Context, _ int) ([]domain.TopProduct, error) {
	return nil, s.err
}

func (s *stubDashboardSvc) SellStats(_ context.Context, _ int) ([]domain.SellStat, error) {
	return nil, s.err
}

func testDeps() (Deps, *stubAuthSvc, *stubCartSvc) {
	auth := &stubAuthSvc{
		user:  &domain.User{ID: 7, Name: "User", Email: "user@example.com"},
		admin: &domain.User{ID: 1, Name: "Admin", Email: "admin@example.com", IsAdmin: true},
	}
	cart := &stubCartSvc{}
	deps := Deps{
		AuthSvc:      auth,
		SessionSvc:   &stubSessionSvc{sessionID: "sess-1"},
		CartSvc:      cart,
		OrderSvc:     &stubOrderSvc{},
		PaymentSvc:   &stubPaymentSvc{},
		ProductSvc:   &stubProductSvc{},
		DashboardSvc: &stubDashboardSvc{overview: &dashboardsvc.Overview{}},
		Authz:        authz.NewPolicy(),
	}
	return deps, auth, cart
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps, []string{"*"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
