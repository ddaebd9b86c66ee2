package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a non-empty account_id proves
// the middleware ran.
func ctxClaims(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get("account_id").(string)
	if accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	return accountID, role, nil
}
