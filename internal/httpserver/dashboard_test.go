package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDashboardRequiresAdmin(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	paths := []string{
		"/dashboard",
		"/dashboard/users",
		"/dashboard/products",
		"/dashboard/orders",
		"/dashboard/payments",
		"/dashboard/top-products",
		"/dashboard/sell-stats",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s anonymous: expected 401, got %d", path, rec.Code)
		}

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer user-token")
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s non-admin: expected 403, got %d", path, rec.Code)
		}
	}
}

func TestDashboardOverview_Admin(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"products_count"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDashboardUsers_PageParams(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/users?page=3&per_page=25", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"page":3`) || !strings.Contains(body, `"per_page":25`) {
		t.Fatalf("expected page params echoed, got %s", body)
	}
}
