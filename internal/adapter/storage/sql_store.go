package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guardwear/inventory/internal/core/domain"
)

// createdAtLayout is RFC 3339 with fixed-width nanoseconds so that the
// stored text sorts chronologically. All timestamps are UTC.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLStore implements the catalog, ledger and report repositories on a
// relational database. The SQL is portable between SQLite and MySQL:
// upserts are explicit check-then-write sequences inside transactions
// rather than dialect conflict clauses, and the stock projection is
// maintained with an update-in-place delta so concurrent movements
// serialize at the store.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the schema if it does not exist. Intended for the
// SQLite backend; a MySQL deployment is expected to provision the
// equivalent schema itself.
func (s *SQLStore) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		badge TEXT UNIQUE
	);

	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		size TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		min_stock INTEGER NOT NULL DEFAULT 0,
		UNIQUE(name, size, category)
	);

	CREATE TABLE IF NOT EXISTS stock_levels (
		item_id INTEGER PRIMARY KEY,
		quantity INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (item_id) REFERENCES items(id)
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id INTEGER NOT NULL,
		employee_id INTEGER,
		type TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		FOREIGN KEY (item_id) REFERENCES items(id),
		FOREIGN KEY (employee_id) REFERENCES employees(id)
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_item
		ON transactions(item_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_created_at
		ON transactions(created_at DESC);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// ---- catalog repository ----

func (s *SQLStore) UpsertEmployee(ctx context.Context, name, role, badge string) (domain.Employee, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	emp := domain.Employee{Name: name, Role: role, Badge: badge}

	if badge != "" {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM employees WHERE badge = ?`, badge,
		).Scan(&id)
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx,
				`UPDATE employees SET name = ?, role = ? WHERE id = ?`,
				name, role, id,
			); err != nil {
				return domain.Employee{}, fmt.Errorf("update employee: %w", err)
			}
			emp.ID = id
			return emp, tx.Commit()
		case !errors.Is(err, sql.ErrNoRows):
			return domain.Employee{}, fmt.Errorf("query employee by badge: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO employees (name, role, badge) VALUES (?, ?, ?)`,
		name, role, nullString(badge),
	)
	if err != nil {
		if isConstraintError(err) {
			return domain.Employee{}, fmt.Errorf("%w: badge %q already registered", domain.ErrConflict, badge)
		}
		return domain.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	emp.ID, err = result.LastInsertId()
	if err != nil {
		return domain.Employee{}, fmt.Errorf("employee id: %w", err)
	}
	return emp, tx.Commit()
}

func (s *SQLStore) EmployeeByName(ctx context.Context, name string) (*domain.Employee, error) {
	return s.scanEmployee(s.db.QueryRowContext(ctx,
		`SELECT id, name, role, badge FROM employees WHERE name = ? ORDER BY id LIMIT 1`, name))
}

func (s *SQLStore) EmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.scanEmployee(s.db.QueryRowContext(ctx,
		`SELECT id, name, role, badge FROM employees WHERE id = ?`, id))
}

func (s *SQLStore) scanEmployee(row *sql.Row) (*domain.Employee, error) {
	var emp domain.Employee
	var badge sql.NullString
	err := row.Scan(&emp.ID, &emp.Name, &emp.Role, &badge)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query employee: %w", err)
	}
	emp.Badge = badge.String
	return &emp, nil
}

func (s *SQLStore) UpsertItem(ctx context.Context, name, size, category string, minStock int) (domain.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Item{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	item := domain.Item{Name: name, Size: size, Category: category, MinStock: minStock}

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM items WHERE name = ? AND size = ? AND category = ?`,
		name, size, category,
	).Scan(&id)
	switch {
	case err == nil:
		// Existing key: only the threshold changes; id and quantity stay.
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET min_stock = ? WHERE id = ?`, minStock, id,
		); err != nil {
			return domain.Item{}, fmt.Errorf("update item: %w", err)
		}
		item.ID = id
		return item, tx.Commit()
	case !errors.Is(err, sql.ErrNoRows):
		return domain.Item{}, fmt.Errorf("query item by key: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO items (name, size, category, min_stock) VALUES (?, ?, ?, ?)`,
		name, size, category, minStock,
	)
	if err != nil {
		if isConstraintError(err) {
			return domain.Item{}, fmt.Errorf("%w: item (%s, %s, %s) already exists", domain.ErrConflict, name, size, category)
		}
		return domain.Item{}, fmt.Errorf("insert item: %w", err)
	}
	item.ID, err = result.LastInsertId()
	if err != nil {
		return domain.Item{}, fmt.Errorf("item id: %w", err)
	}

	// New items start with an explicit zero stock level row.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO stock_levels (item_id, quantity) VALUES (?, 0)`, item.ID,
	); err != nil {
		return domain.Item{}, fmt.Errorf("init stock level: %w", err)
	}
	return item, tx.Commit()
}

func (s *SQLStore) ItemByKey(ctx context.Context, name, size, category string) (*domain.Item, error) {
	return s.scanItem(s.db.QueryRowContext(ctx,
		`SELECT id, name, size, category, min_stock FROM items
		 WHERE name = ? AND size = ? AND category = ?`,
		name, size, category))
}

func (s *SQLStore) ItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.scanItem(s.db.QueryRowContext(ctx,
		`SELECT id, name, size, category, min_stock FROM items WHERE id = ?`, id))
}

func (s *SQLStore) scanItem(row *sql.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.ID, &item.Name, &item.Size, &item.Category, &item.MinStock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

func (s *SQLStore) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, badge FROM employees ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		var badge sql.NullString
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Role, &badge); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		emp.Badge = badge.String
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *SQLStore) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, size, category, min_stock FROM items ORDER BY name, size`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Size, &item.Category, &item.MinStock); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ---- ledger repository ----

func (s *SQLStore) AppendMovement(ctx context.Context, m domain.Movement) (domain.Movement, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Movement{}, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	m.CreatedAt = time.Now().UTC()

	var employeeID sql.NullInt64
	if m.EmployeeID != nil {
		employeeID = sql.NullInt64{Int64: *m.EmployeeID, Valid: true}
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (item_id, employee_id, type, quantity, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ItemID, employeeID, string(m.Kind), m.Quantity, m.Note,
		m.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		return domain.Movement{}, 0, fmt.Errorf("insert transaction: %w", err)
	}
	m.ID, err = result.LastInsertId()
	if err != nil {
		return domain.Movement{}, 0, fmt.Errorf("transaction id: %w", err)
	}

	// Delta applied in place so two concurrent movements against the
	// same item both land; should the stock level row be missing the
	// item was created outside UpsertItem, so seed it first.
	result, err = tx.ExecContext(ctx,
		`UPDATE stock_levels SET quantity = quantity + ? WHERE item_id = ?`,
		m.Quantity, m.ItemID,
	)
	if err != nil {
		return domain.Movement{}, 0, fmt.Errorf("update stock level: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stock_levels (item_id, quantity) VALUES (?, ?)`,
			m.ItemID, m.Quantity,
		); err != nil {
			return domain.Movement{}, 0, fmt.Errorf("seed stock level: %w", err)
		}
	}

	var quantity int
	if err := tx.QueryRowContext(ctx,
		`SELECT quantity FROM stock_levels WHERE item_id = ?`, m.ItemID,
	).Scan(&quantity); err != nil {
		return domain.Movement{}, 0, fmt.Errorf("read stock level: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Movement{}, 0, fmt.Errorf("commit movement: %w", err)
	}
	return m, quantity, nil
}

// ---- report repository ----

func (s *SQLStore) StatusRows(ctx context.Context) ([]domain.StatusRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.size, i.category, i.min_stock, COALESCE(s.quantity, 0)
		FROM items i
		LEFT JOIN stock_levels s ON s.item_id = i.id
		ORDER BY i.name, i.size`)
	if err != nil {
		return nil, fmt.Errorf("query status: %w", err)
	}
	defer rows.Close()

	var report []domain.StatusRow
	for rows.Next() {
		var row domain.StatusRow
		if err := rows.Scan(&row.Item.ID, &row.Item.Name, &row.Item.Size,
			&row.Item.Category, &row.Item.MinStock, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		row.Below = row.Quantity < row.Item.MinStock
		report = append(report, row)
	}
	return report, rows.Err()
}

func (s *SQLStore) SearchMovements(ctx context.Context, nameFilter, employeeFilter string) ([]domain.HistoryRow, error) {
	query := `
		SELECT t.id, i.name, i.size, i.category, COALESCE(e.name, ''),
		       t.type, t.quantity, t.note, t.created_at
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE 1=1`
	var args []any
	if nameFilter != "" {
		query += ` AND i.name LIKE ?`
		args = append(args, "%"+nameFilter+"%")
	}
	if employeeFilter != "" {
		query += ` AND e.name LIKE ?`
		args = append(args, "%"+employeeFilter+"%")
	}
	query += ` ORDER BY t.created_at DESC, t.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var history []domain.HistoryRow
	for rows.Next() {
		var row domain.HistoryRow
		var createdAt string
		if err := rows.Scan(&row.ID, &row.ItemName, &row.Size, &row.Category,
			&row.Employee, &row.Kind, &row.Quantity, &row.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		row.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		history = append(history, row)
	}
	return history, rows.Err()
}

// SumMovements recomputes an item's quantity from the ledger alone,
// bypassing the stock_levels projection.
func (s *SQLStore) SumMovements(ctx context.Context, itemID int64) (int, error) {
	var sum int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM transactions WHERE item_id = ?`, itemID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}

// ---- helpers ----

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") // mysql 1062
}
