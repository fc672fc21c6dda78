package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-api/internal/domain"
)

func TestCreateOrderHandler_RequiresAuth(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrderHandler_EmptyCart(t *testing.T) {
	deps, _, _ := testDeps()
	deps.OrderSvc = &stubOrderSvc{err: domain.ErrEmptyCart}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "empty cart") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateOrderHandler_Created(t *testing.T) {
	deps, _, _ := testDeps()
	deps.OrderSvc = &stubOrderSvc{order: &domain.Order{
		ID:         11,
		UserID:     7,
		Status:     domain.OrderStatusPending,
		TotalCents: 3998,
	}}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"pending"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetOrderHandler_NotOwner(t *testing.T) {
	deps, _, _ := testDeps()
	deps.OrderSvc = &stubOrderSvc{err: domain.ErrForbidden}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/11", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetOrderHandler_BadID(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
