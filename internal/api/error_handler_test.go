package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid or missing credentials"},
	}

	for _, tc := range cases {
		code, msg := render(t, tc.err)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.code, tc.msg, code, msg)
		}
	}
}

func TestErrorHandler_CredentialErrorsIndistinguishable(t *testing.T) {
	codeA, msgA := render(t, domain.ErrInvalidCredentials)
	codeB, msgB := render(t, domain.ErrUserNotFound)
	if codeA != codeB || msgA != msgB {
		t.Fatalf("credential failures must be indistinguishable: %d %q vs %d %q", codeA, msgA, codeB, msgB)
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials"))
	if code != http.StatusUnauthorized || msg != "invalid or missing credentials" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_Unexpected(t *testing.T) {
	code, msg := render(t, errors.New("boom"))
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("expected generic 500, got %d %q", code, msg)
	}
}
