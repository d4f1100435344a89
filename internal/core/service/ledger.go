package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/guardwear/inventory/internal/core/domain"
	"github.com/guardwear/inventory/internal/port"
)

// Ledger records stock movements. Every quantity change is exactly one
// append-only ledger entry, applied to the stock projection in the same
// storage transaction. The ledger stores the signed delta verbatim; sign
// derivation per movement kind is the calling adapter's job.
//
// No rule blocks negative resulting stock: the ledger favors recording
// over conservation enforcement, and the adjust kind exists to reconcile
// drift after physical audits.
type Ledger struct {
	catalog port.CatalogRepository
	ledger  port.LedgerRepository
	alerts  port.AlertPublisher // nil disables low-stock alerts
}

func NewLedger(catalog port.CatalogRepository, ledger port.LedgerRepository, alerts port.AlertPublisher) *Ledger {
	return &Ledger{catalog: catalog, ledger: ledger, alerts: alerts}
}

func (l *Ledger) RecordMovement(ctx context.Context, itemID int64, employeeID *int64, kind domain.Kind, quantity int, note string) (domain.Movement, error) {
	if !kind.Valid() {
		return domain.Movement{}, fmt.Errorf("%w: unknown movement type %q", domain.ErrInvalid, kind)
	}

	item, err := l.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return domain.Movement{}, err
	}
	if item == nil {
		return domain.Movement{}, fmt.Errorf("%w: no item with id %d", domain.ErrNotFound, itemID)
	}

	if employeeID != nil {
		emp, err := l.catalog.EmployeeByID(ctx, *employeeID)
		if err != nil {
			return domain.Movement{}, err
		}
		if emp == nil {
			return domain.Movement{}, fmt.Errorf("%w: no employee with id %d", domain.ErrNotFound, *employeeID)
		}
	}

	movement, remaining, err := l.ledger.AppendMovement(ctx, domain.Movement{
		ItemID:     itemID,
		EmployeeID: employeeID,
		Kind:       kind,
		Quantity:   quantity,
		Note:       note,
	})
	if err != nil {
		return domain.Movement{}, err
	}

	if l.alerts != nil && remaining < item.MinStock {
		alert := domain.LowStockAlert{
			EventID:  uuid.New().String(),
			ItemID:   item.ID,
			Name:     item.Name,
			Size:     item.Size,
			Category: item.Category,
			Quantity: remaining,
			MinStock: item.MinStock,
			At:       time.Now().UTC(),
		}
		// The movement is already committed; a publish failure is
		// logged and never surfaced to the caller.
		if err := l.alerts.PublishLowStock(ctx, alert); err != nil {
			log.Printf("low-stock alert for item %d failed: %v", item.ID, err)
		}
	}

	return movement, nil
}
