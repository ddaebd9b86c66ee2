package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// SweetRepository defines persistence operations for inventory items.
type SweetRepository interface {
	Create(ctx context.Context, sweet *domain.Sweet) error
	// List returns all sweets ordered by creation time.
	List(ctx context.Context) ([]*domain.Sweet, error)
}
