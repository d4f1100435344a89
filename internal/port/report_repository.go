package port

import (
	"context"

	"github.com/guardwear/inventory/internal/core/domain"
)

type ReportRepository interface {
	// StatusRows returns one row per item with its current quantity,
	// ordered by name then size. Items without a stock level row count
	// as quantity zero.
	StatusRows(ctx context.Context) ([]domain.StatusRow, error)

	// SearchMovements returns movements joined with item and employee
	// names, newest first. Non-empty filters match as substrings
	// against the item name and employee name respectively.
	SearchMovements(ctx context.Context, nameFilter, employeeFilter string) ([]domain.HistoryRow, error)
}
