package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
// Email uniqueness is enforced by the underlying store; Create fails with
// domain.ErrUserExists when the email is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
