package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/token"
)

type stubRevocations struct {
	revoked map[string]bool
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

func signedToken(t *testing.T) string {
	t.Helper()
	issuer := token.NewIssuer("secret", time.Hour)
	raw, err := issuer.Issue(&domain.User{ID: "acc-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newGuard() echo.MiddlewareFunc {
	return Auth(token.NewVerifier("secret"), &stubRevocations{revoked: map[string]bool{}})
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := newGuard()(func(c echo.Context) error {
		called = true
		if c.Get("account_id") != "acc-1" {
			t.Fatalf("account_id not set")
		}
		if c.Get("role") != domain.RoleUser {
			t.Fatalf("role not set")
		}
		if jti, _ := c.Get("token_id").(string); jti == "" {
			t.Fatalf("token_id not set")
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

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := newGuard()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := newGuard()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	e := echo.New()
	raw := signedToken(t)
	tampered := raw[:len(raw)-2] + "xx"

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := newGuard()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	e := echo.New()
	raw := signedToken(t)

	claims, err := token.NewVerifier("secret").Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	revocations := &stubRevocations{revoked: map[string]bool{claims.ID: true}}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(token.NewVerifier("secret"), revocations)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
