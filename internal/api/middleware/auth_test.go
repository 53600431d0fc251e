package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notewise/notes-api/internal/core/token"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("secret", time.Hour)
	signed, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-42" {
			t.Fatalf("user_id not set, got %v", c.Get("user_id"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func runRejected(t *testing.T, authHeader string, issuer TokenResolver) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	if code := runRejected(t, "", issuer); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	if code := runRejected(t, "Token abc", issuer); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	if code := runRejected(t, "Bearer not-a-token", issuer); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	signed, err := token.NewIssuer("other-secret", time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	issuer := token.NewIssuer("secret", time.Hour)
	if code := runRejected(t, "Bearer "+signed, issuer); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
