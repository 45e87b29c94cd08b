package ports

import (
	"context"

	"burgercounter/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the cash ledger.
// The ledger is append-only: there is no update or delete.
type LedgerRepository interface {
	// Add appends a movement.
	Add(ctx context.Context, aggregate *ledger.Movement) error
}
