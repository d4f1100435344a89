package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/guardwear/inventory/internal/core/domain"
)

func TestUpsertEmployee_EmptyName(t *testing.T) {
	catalog := NewCatalog(newMockCatalogRepo())

	_, err := catalog.UpsertEmployee(context.Background(), "  ", "guard", "")
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestUpsertItem_Validation(t *testing.T) {
	catalog := NewCatalog(newMockCatalogRepo())
	ctx := context.Background()

	if _, err := catalog.UpsertItem(ctx, "", "L", "summer", 0); !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("empty name: expected ErrInvalid, got %v", err)
	}
	if _, err := catalog.UpsertItem(ctx, "Shirt", "L", "summer", -1); !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("negative min stock: expected ErrInvalid, got %v", err)
	}
}

func TestResolveEmployee_NotFound(t *testing.T) {
	catalog := NewCatalog(newMockCatalogRepo())

	_, err := catalog.ResolveEmployee(context.Background(), "Dana")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Dana") {
		t.Errorf("error should name the missing employee, got %q", err)
	}
}

func TestResolveItem_NotFound(t *testing.T) {
	repo := newMockCatalogRepo()
	catalog := NewCatalog(repo)
	ctx := context.Background()

	if _, err := catalog.UpsertItem(ctx, "Shirt", "L", "summer", 20); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Only the L variant exists; M must not resolve and must not be created.
	_, err := catalog.ResolveItem(ctx, "Shirt", "M", "summer")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	items, _ := catalog.ListItems(ctx)
	if len(items) != 1 {
		t.Errorf("resolve must not create items, catalog has %d", len(items))
	}
}

func TestResolveItem_Found(t *testing.T) {
	catalog := NewCatalog(newMockCatalogRepo())
	ctx := context.Background()

	created, err := catalog.UpsertItem(ctx, "Shirt", "L", "summer", 20)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := catalog.ResolveItem(ctx, "Shirt", "L", "summer")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != created.ID || got.MinStock != 20 {
		t.Errorf("resolved %+v, want %+v", got, created)
	}
}
