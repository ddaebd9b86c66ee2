package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a new inventory item.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// SweetService defines use-case operations for the inventory.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
}
