package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/token"
)

// TokenRevocations reports whether a token id has been denylisted.
type TokenRevocations interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth is the access guard for protected routes. It extracts the bearer
// token, delegates to the verifier, checks the revocation list, and injects
// the authenticated claims into the request context. The wrapped handler
// never runs on rejection.
func Auth(verifier *token.Verifier, revocations TokenRevocations) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")
			}

			if claims.ID != "" {
				revoked, err := revocations.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "authorization check failed")
				}
				if revoked {
					metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")
				}
			}

			c.Set("account_id", claims.AccountID)
			c.Set("role", claims.Role)
			c.Set("token_id", claims.ID)
			c.Set("token_expires", claims.ExpiresAt)

			return next(c)
		}
	}
}
