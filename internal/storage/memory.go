package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
	applog "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/log"
)

// MemoryStore keeps both collections in process memory, going through the
// same JSON encoding as the SQLite store so tests cover the codec too.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	data, ok := s.get(KeyTransactions)
	if !ok {
		return nil, nil
	}
	txs, err := decodeTransactions(data)
	if err != nil {
		slog.WarnContext(ctx, "Discarding malformed transactions record",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentStorage)
		return nil, nil
	}
	return txs, nil
}

func (s *MemoryStore) SaveTransactions(_ context.Context, txs []core.Transaction) error {
	data, err := encodeTransactions(txs)
	if err != nil {
		return err
	}
	s.set(KeyTransactions, data)
	return nil
}

func (s *MemoryStore) LoadBills(ctx context.Context) ([]core.Bill, error) {
	data, ok := s.get(KeyBills)
	if !ok {
		return nil, nil
	}
	bills, err := decodeBills(data)
	if err != nil {
		slog.WarnContext(ctx, "Discarding malformed bills record",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentStorage)
		return nil, nil
	}
	return bills, nil
}

func (s *MemoryStore) SaveBills(_ context.Context, bills []core.Bill) error {
	data, err := encodeBills(bills)
	if err != nil {
		return err
	}
	s.set(KeyBills, data)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Corrupt overwrites a stored record with arbitrary bytes. Test helper for
// exercising the malformed-data fallback.
func (s *MemoryStore) Corrupt(key string, data []byte) {
	s.set(key, data)
}

func (s *MemoryStore) get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.values[key]
	return data, ok
}

func (s *MemoryStore) set(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), data...)
}
