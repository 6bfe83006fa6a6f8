package ports

import (
	"context"

	"github.com/avelik/hotel_ledger/internal/core/domain"
)

// LedgerRepository persists the booking ledger as one snapshot.
type LedgerRepository interface {
	// Save writes the whole ledger, replacing any previous snapshot.
	Save(ctx context.Context, ledger domain.Ledger) error
	// Load restores the last saved ledger. A missing or unreadable snapshot
	// yields an empty ledger, not an error.
	Load(ctx context.Context) (domain.Ledger, error)
}
