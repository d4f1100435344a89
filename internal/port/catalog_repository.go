package port

import (
	"context"

	"github.com/guardwear/inventory/internal/core/domain"
)

type CatalogRepository interface {
	// UpsertEmployee inserts an employee, or updates name and role in
	// place when badge is non-empty and already registered.
	UpsertEmployee(ctx context.Context, name, role, badge string) (domain.Employee, error)

	// EmployeeByName returns the employee with that exact name, or nil
	// when none exists.
	EmployeeByName(ctx context.Context, name string) (*domain.Employee, error)

	// EmployeeByID returns the employee with that id, or nil.
	EmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)

	// UpsertItem inserts an item keyed by (name, size, category),
	// seeding a zero stock level, or updates only the minimum-stock
	// threshold when the key already exists.
	UpsertItem(ctx context.Context, name, size, category string, minStock int) (domain.Item, error)

	// ItemByKey returns the item with that exact key, or nil.
	ItemByKey(ctx context.Context, name, size, category string) (*domain.Item, error)

	// ItemByID returns the item with that id, or nil.
	ItemByID(ctx context.Context, id int64) (*domain.Item, error)

	// ListEmployees returns all employees ordered by name.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// ListItems returns all items ordered by name then size.
	ListItems(ctx context.Context) ([]domain.Item, error)
}
