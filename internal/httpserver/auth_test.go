package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-api/internal/domain"
	authsvc "shop-api/internal/service/auth"
)

func TestRegisterHandler_Created(t *testing.T) {
	deps, auth, _ := testDeps()
	auth.registered = &domain.User{ID: 2, Name: "New", Email: "new@example.com"}
	router := testRouter(t, deps)

	body := `{"name":"New","email":"new@example.com","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"new@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	deps, auth, _ := testDeps()
	auth.registerErr = authsvc.ErrEmailTaken
	router := testRouter(t, deps)

	body := `{"name":"New","email":"taken@example.com","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_Success(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	body := `{"email":"user@example.com","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"access-token"`) {
		t.Fatalf("expected token in body: %s", rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	deps, auth, _ := testDeps()
	auth.loginErr = authsvc.ErrInvalidCredentials
	router := testRouter(t, deps)

	body := `{"email":"user@example.com","password":"WrongPass1"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogoutHandler_RequiresAuth(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogoutHandler_Success(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSessionStartHandler(t *testing.T) {
	deps, _, _ := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	for _, key := range []string{`"session_token"`, `"session_id"`, `"expires_in"`} {
		if !strings.Contains(rec.Body.String(), key) {
			t.Fatalf("expected %s in body: %s", key, rec.Body.String())
		}
	}
}
