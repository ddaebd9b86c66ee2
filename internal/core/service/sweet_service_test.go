package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

type stubSweetRepo struct {
	sweets []*domain.Sweet
}

func (r *stubSweetRepo) Create(_ context.Context, sweet *domain.Sweet) error {
	clone := *sweet
	r.sweets = append(r.sweets, &clone)
	return nil
}

func (r *stubSweetRepo) List(_ context.Context) ([]*domain.Sweet, error) {
	return r.sweets, nil
}

func TestSweetService_Create(t *testing.T) {
	repo := &stubSweetRepo{}
	svc := NewSweetService(repo, zerolog.Nop())

	sweet, err := svc.Create(context.Background(), ports.CreateSweetInput{
		Name:     "Ladoo",
		Category: "Indian",
		Price:    5.0,
		Quantity: 10,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sweet.ID == "" {
		t.Fatalf("expected generated id")
	}
	if sweet.Name != "Ladoo" || sweet.Category != "Indian" || sweet.Price != 5.0 || sweet.Quantity != 10 {
		t.Fatalf("submitted fields not intact: %+v", sweet)
	}
	if len(repo.sweets) != 1 {
		t.Fatalf("expected sweet to be persisted")
	}
}

func TestSweetService_Create_FreshIDs(t *testing.T) {
	repo := &stubSweetRepo{}
	svc := NewSweetService(repo, zerolog.Nop())

	a, _ := svc.Create(context.Background(), ports.CreateSweetInput{Name: "Ladoo", Category: "Indian"})
	b, _ := svc.Create(context.Background(), ports.CreateSweetInput{Name: "Barfi", Category: "Indian"})
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %s", a.ID)
	}
}

func TestSweetService_List(t *testing.T) {
	repo := &stubSweetRepo{}
	svc := NewSweetService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateSweetInput{Name: "Ladoo", Category: "Indian", Price: 5, Quantity: 10})

	sweets, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sweets) != 1 || sweets[0].ID != created.ID {
		t.Fatalf("expected created sweet in listing, got %+v", sweets)
	}
}
