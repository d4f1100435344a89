package port

import (
	"context"

	"github.com/guardwear/inventory/internal/core/domain"
)

type LedgerRepository interface {
	// AppendMovement persists the movement and applies its signed delta
	// to the item's stock level in a single transaction, rolling back
	// both on any failure. Returns the stored movement with its
	// assigned id and timestamp, and the resulting quantity.
	AppendMovement(ctx context.Context, m domain.Movement) (domain.Movement, int, error)
}
