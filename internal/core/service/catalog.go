package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guardwear/inventory/internal/core/domain"
	"github.com/guardwear/inventory/internal/port"
)

// Catalog owns employee and item identity. Resolution is strict: a
// resolve call never creates a record, so a typo surfaces as a visible
// error instead of silently fragmenting inventory under a near
// duplicate key.
type Catalog struct {
	repo port.CatalogRepository
}

func NewCatalog(repo port.CatalogRepository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) UpsertEmployee(ctx context.Context, name, role, badge string) (domain.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Employee{}, fmt.Errorf("%w: employee name must not be empty", domain.ErrInvalid)
	}
	return c.repo.UpsertEmployee(ctx, name, role, badge)
}

func (c *Catalog) ResolveEmployee(ctx context.Context, name string) (domain.Employee, error) {
	emp, err := c.repo.EmployeeByName(ctx, name)
	if err != nil {
		return domain.Employee{}, err
	}
	if emp == nil {
		return domain.Employee{}, fmt.Errorf("%w: no employee named %q", domain.ErrNotFound, name)
	}
	return *emp, nil
}

func (c *Catalog) UpsertItem(ctx context.Context, name, size, category string, minStock int) (domain.Item, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Item{}, fmt.Errorf("%w: item name must not be empty", domain.ErrInvalid)
	}
	if minStock < 0 {
		return domain.Item{}, fmt.Errorf("%w: min stock must not be negative, got %d", domain.ErrInvalid, minStock)
	}
	return c.repo.UpsertItem(ctx, name, size, category, minStock)
}

func (c *Catalog) ResolveItem(ctx context.Context, name, size, category string) (domain.Item, error) {
	item, err := c.repo.ItemByKey(ctx, name, size, category)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, fmt.Errorf("%w: item (%s, %s, %s) does not exist, create it with add-item first",
			domain.ErrNotFound, name, size, category)
	}
	return *item, nil
}

func (c *Catalog) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return c.repo.ListEmployees(ctx)
}

func (c *Catalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	return c.repo.ListItems(ctx)
}
