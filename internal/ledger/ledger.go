// Package ledger owns the two record collections and their persistence.
//
// The Ledger is the single mutable state container: it loads both
// collections from the store at startup, serves read-only copies to the
// rest of the application, and writes the full updated collection back on
// every change. No other component mutates the collections.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/storage"
)

// TransactionInput carries the validated, untagged fields of a new
// transaction. The ledger assigns the id.
type TransactionInput struct {
	Description string
	Amount      core.Money
	Date        core.Date
	Type        core.TransactionType
}

// BillInput carries the validated, untagged fields of a new bill. The
// ledger assigns the id and the initial pending status.
type BillInput struct {
	Name    string
	Amount  core.Money
	DueDate core.Date
}

type Ledger struct {
	store storage.Store

	mu           sync.Mutex
	transactions []core.Transaction
	bills        []core.Bill
	revision     uint64
}

// Open loads both collections from the store. Malformed or absent stored
// data yields empty collections; only an unreadable store is an error.
func Open(ctx context.Context, store storage.Store) (*Ledger, error) {
	txs, err := store.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	bills, err := store.LoadBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bills: %w", err)
	}

	slog.InfoContext(ctx, "Ledger loaded",
		"transactions", len(txs),
		"bills", len(bills))

	return &Ledger{
		store:        store,
		transactions: txs,
		bills:        bills,
	}, nil
}

// Transactions returns a read-only copy of the transaction collection in
// insertion order.
func (l *Ledger) Transactions() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Transaction(nil), l.transactions...)
}

// Bills returns a read-only copy of the bill collection in insertion order.
func (l *Ledger) Bills() []core.Bill {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Bill(nil), l.bills...)
}

// Summary computes the three dashboard totals.
func (l *Ledger) Summary() core.Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return core.Summarize(l.transactions)
}

// Revision is a change counter incremented on every successful mutation.
// Derived-data caches key on it to stay coherent.
func (l *Ledger) Revision() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.revision
}

// AddTransaction assigns an id to the input, appends it and persists the
// collection.
func (l *Ledger) AddTransaction(ctx context.Context, in TransactionInput) (core.Transaction, error) {
	tx := core.Transaction{
		ID:          uuid.NewString(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Type:        in.Type,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = append(l.transactions, tx)
	if err := l.store.SaveTransactions(ctx, l.transactions); err != nil {
		l.transactions = l.transactions[:len(l.transactions)-1]
		return core.Transaction{}, fmt.Errorf("persist transactions: %w", err)
	}
	l.revision++
	return tx, nil
}

// DeleteTransaction removes exactly the record with the given id and
// persists the collection. Unknown ids return core.ErrNotFound and leave
// everything untouched.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, tx := range l.transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.ErrNotFound
	}

	removed := l.transactions[idx]
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	if err := l.store.SaveTransactions(ctx, l.transactions); err != nil {
		l.transactions = append(l.transactions[:idx], append([]core.Transaction{removed}, l.transactions[idx:]...)...)
		return fmt.Errorf("persist transactions: %w", err)
	}
	l.revision++
	return nil
}

// AddBill assigns an id, sets the status to pending, appends and persists.
func (l *Ledger) AddBill(ctx context.Context, in BillInput) (core.Bill, error) {
	b := core.Bill{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Amount:  in.Amount,
		DueDate: in.DueDate,
		Status:  core.Pending,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.bills = append(l.bills, b)
	if err := l.store.SaveBills(ctx, l.bills); err != nil {
		l.bills = l.bills[:len(l.bills)-1]
		return core.Bill{}, fmt.Errorf("persist bills: %w", err)
	}
	l.revision++
	return b, nil
}

// ToggleBill flips the bill's status between pending and paid and persists.
func (l *Ledger) ToggleBill(ctx context.Context, id string) (core.Bill, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.bills {
		if l.bills[i].ID != id {
			continue
		}
		prev := l.bills[i].Status
		l.bills[i].Status = prev.Toggle()
		if err := l.store.SaveBills(ctx, l.bills); err != nil {
			l.bills[i].Status = prev
			return core.Bill{}, fmt.Errorf("persist bills: %w", err)
		}
		l.revision++
		return l.bills[i], nil
	}
	return core.Bill{}, core.ErrNotFound
}

// DeleteBill removes exactly the record with the given id and persists.
func (l *Ledger) DeleteBill(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, b := range l.bills {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.ErrNotFound
	}

	removed := l.bills[idx]
	l.bills = append(l.bills[:idx], l.bills[idx+1:]...)
	if err := l.store.SaveBills(ctx, l.bills); err != nil {
		l.bills = append(l.bills[:idx], append([]core.Bill{removed}, l.bills[idx:]...)...)
		return fmt.Errorf("persist bills: %w", err)
	}
	l.revision++
	return nil
}
