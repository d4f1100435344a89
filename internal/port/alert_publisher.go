package port

import (
	"context"

	"github.com/guardwear/inventory/internal/core/domain"
)

type AlertPublisher interface {
	// PublishLowStock emits a low-stock alert event. Called after the
	// movement has committed; failures must not affect the ledger.
	PublishLowStock(ctx context.Context, alert domain.LowStockAlert) error
}
