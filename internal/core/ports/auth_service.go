package ports

import (
	"context"
	"time"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login returns a signed access token for the account matching the
	// credentials. Unknown email and wrong password fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, accountID, tokenID string, expiresAt time.Time) error
}
