package service

import (
	"context"

	"github.com/guardwear/inventory/internal/core/domain"
	"github.com/guardwear/inventory/internal/port"
)

// Query provides the read-only views: the stock-status report and the
// filtered movement history. It never mutates stock or ledger state.
type Query struct {
	reports port.ReportRepository
}

func NewQuery(reports port.ReportRepository) *Query {
	return &Query{reports: reports}
}

func (q *Query) StatusReport(ctx context.Context) ([]domain.StatusRow, error) {
	return q.reports.StatusRows(ctx)
}

// History returns movements newest first, optionally filtered by item
// name and employee name substrings, decorated with the display label
// for each movement kind.
func (q *Query) History(ctx context.Context, nameFilter, employeeFilter string) ([]domain.HistoryRow, error) {
	rows, err := q.reports.SearchMovements(ctx, nameFilter, employeeFilter)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TypeLabel = rows[i].Kind.Label()
	}
	return rows, nil
}
