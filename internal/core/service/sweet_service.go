package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

type SweetService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, logger: logger}
}

// Create persists a new inventory item with a freshly generated id.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	sweet := &domain.Sweet{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sweet); err != nil {
		s.logger.Error().Err(err).Msg("failed to create sweet")
		return nil, err
	}

	s.logger.Info().Str("sweet_id", sweet.ID).Str("category", sweet.Category).Msg("sweet created")
	return sweet, nil
}

// List returns the full inventory ordered by creation time.
func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.List(ctx)
}
