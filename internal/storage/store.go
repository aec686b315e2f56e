// Package storage persists the two record collections to a local store.
//
// The layout mirrors the browser-storage model the tracker grew out of: two
// named records, one per collection, each holding the full list serialized
// as JSON. Absent or malformed data always loads as an empty collection;
// corruption is logged, never surfaced.
package storage

import (
	"context"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
)

// Storage keys for the two collections.
const (
	KeyTransactions = "transactions"
	KeyBills        = "bills"
)

// Store is the port the ledger persists through. Saves replace the full
// collection and complete before the calling mutation returns.
type Store interface {
	LoadTransactions(ctx context.Context) ([]core.Transaction, error)
	SaveTransactions(ctx context.Context, txs []core.Transaction) error
	LoadBills(ctx context.Context) ([]core.Bill, error)
	SaveBills(ctx context.Context, bills []core.Bill) error
	Close() error
}
