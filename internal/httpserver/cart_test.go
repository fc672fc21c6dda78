package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-api/internal/domain"
)

func TestCartHandlers_NoOwner(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "session or login required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddCartItemHandler_GuestSession(t *testing.T) {
	deps, _, cart := testDeps()
	cart.item = &domain.CartItem{ID: 1, ProductID: 3, Quantity: 2}
	router := testRouter(t, deps)

	body := `{"product_id":3,"quantity":2,"price":1999}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, "session-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cart.lastOwner.IsUser() || cart.lastOwner.SessionID != "sess-1" {
		t.Fatalf("expected session owner sess-1, got %+v", cart.lastOwner)
	}
}

func TestAddCartItemHandler_UserOwnerWins(t *testing.T) {
	deps, _, cart := testDeps()
	cart.item = &domain.CartItem{ID: 1, ProductID: 3, Quantity: 1}
	router := testRouter(t, deps)

	// Both credentials present: the authenticated user owns the cart.
	body := `{"product_id":3,"quantity":1,"price":1999}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer user-token")
	req.Header.Set(SessionHeader, "session-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !cart.lastOwner.IsUser() || cart.lastOwner.UserID != 7 {
		t.Fatalf("expected user owner 7, got %+v", cart.lastOwner)
	}
}

func TestAddCartItemHandler_UnknownProduct(t *testing.T) {
	deps, _, cart := testDeps()
	cart.err = domain.ErrNotFound
	router := testRouter(t, deps)

	body := `{"product_id":999,"quantity":1,"price":1999}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, "session-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItemHandler_InvalidQuantity(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	body := `{"product_id":3,"quantity":0,"price":1999}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, "session-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMigrateCartHandler(t *testing.T) {
	deps, _, cart := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/migrate", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	req.Header.Set(SessionHeader, "session-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cart.migrateSID != "sess-1" || cart.migrateUID != 7 {
		t.Fatalf("unexpected migrate args sid=%q uid=%d", cart.migrateSID, cart.migrateUID)
	}
}

func TestMigrateCartHandler_NoSessionIsNoop(t *testing.T) {
	deps, _, cart := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/migrate", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cart.migrateSID != "" {
		t.Fatalf("expected empty session id, got %q", cart.migrateSID)
	}
}
