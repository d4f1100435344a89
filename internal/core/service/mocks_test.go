package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guardwear/inventory/internal/core/domain"
)

// In-memory port fakes, mutex-guarded so concurrency tests can share them.

type mockCatalogRepo struct {
	mu        sync.Mutex
	employees map[int64]domain.Employee
	items     map[int64]domain.Item
	nextID    int64
	err       error
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		employees: make(map[int64]domain.Employee),
		items:     make(map[int64]domain.Item),
	}
}

func (m *mockCatalogRepo) UpsertEmployee(_ context.Context, name, role, badge string) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Employee{}, m.err
	}
	if badge != "" {
		for id, emp := range m.employees {
			if emp.Badge == badge {
				emp.Name, emp.Role = name, role
				m.employees[id] = emp
				return emp, nil
			}
		}
	}
	m.nextID++
	emp := domain.Employee{ID: m.nextID, Name: name, Role: role, Badge: badge}
	m.employees[emp.ID] = emp
	return emp, nil
}

func (m *mockCatalogRepo) EmployeeByName(_ context.Context, name string) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, emp := range m.employees {
		if emp.Name == name {
			e := emp
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) EmployeeByID(_ context.Context, id int64) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if emp, ok := m.employees[id]; ok {
		return &emp, nil
	}
	return nil, nil
}

func (m *mockCatalogRepo) UpsertItem(_ context.Context, name, size, category string, minStock int) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Item{}, m.err
	}
	for id, item := range m.items {
		if item.Name == name && item.Size == size && item.Category == category {
			item.MinStock = minStock
			m.items[id] = item
			return item, nil
		}
	}
	m.nextID++
	item := domain.Item{ID: m.nextID, Name: name, Size: size, Category: category, MinStock: minStock}
	m.items[item.ID] = item
	return item, nil
}

func (m *mockCatalogRepo) ItemByKey(_ context.Context, name, size, category string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, item := range m.items {
		if item.Name == name && item.Size == size && item.Category == category {
			i := item
			return &i, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) ItemByID(_ context.Context, id int64) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if item, ok := m.items[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (m *mockCatalogRepo) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Employee
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, m.err
}

func (m *mockCatalogRepo) ListItems(_ context.Context) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Item
	for _, item := range m.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Size < out[j].Size
	})
	return out, m.err
}

type mockLedgerRepo struct {
	mu         sync.Mutex
	movements  []domain.Movement
	quantities map[int64]int
	nextID     int64
	err        error
}

func newMockLedgerRepo() *mockLedgerRepo {
	return &mockLedgerRepo{quantities: make(map[int64]int)}
}

func (m *mockLedgerRepo) AppendMovement(_ context.Context, movement domain.Movement) (domain.Movement, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Movement{}, 0, m.err
	}
	m.nextID++
	movement.ID = m.nextID
	movement.CreatedAt = time.Now().UTC()
	m.movements = append(m.movements, movement)
	m.quantities[movement.ItemID] += movement.Quantity
	return movement, m.quantities[movement.ItemID], nil
}

type mockAlertPublisher struct {
	mu     sync.Mutex
	alerts []domain.LowStockAlert
	err    error
}

func (m *mockAlertPublisher) PublishLowStock(_ context.Context, alert domain.LowStockAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.alerts = append(m.alerts, alert)
	return nil
}

func (m *mockAlertPublisher) published() []domain.LowStockAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.LowStockAlert(nil), m.alerts...)
}

type mockReportRepo struct {
	status  []domain.StatusRow
	history []domain.HistoryRow
	err     error
}

func (m *mockReportRepo) StatusRows(_ context.Context) ([]domain.StatusRow, error) {
	return m.status, m.err
}

func (m *mockReportRepo) SearchMovements(_ context.Context, _, _ string) ([]domain.HistoryRow, error) {
	return m.history, m.err
}
