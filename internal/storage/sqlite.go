package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
	applog "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps each collection as a single JSON document in a
// key-value table, one row per collection.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	data, ok, err := s.loadValue(ctx, KeyTransactions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	txs, err := decodeTransactions(data)
	if err != nil {
		// Structurally incompatible data is treated as absent, not an error.
		slog.WarnContext(ctx, "Discarding malformed transactions record",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentStorage)
		return nil, nil
	}
	return txs, nil
}

func (s *SQLiteStore) SaveTransactions(ctx context.Context, txs []core.Transaction) error {
	data, err := encodeTransactions(txs)
	if err != nil {
		return err
	}
	return s.saveValue(ctx, KeyTransactions, data)
}

func (s *SQLiteStore) LoadBills(ctx context.Context) ([]core.Bill, error) {
	data, ok, err := s.loadValue(ctx, KeyBills)
	if err != nil {
		return nil, err
	}
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

func (s *SQLiteStore) SaveBills(ctx context.Context, bills []core.Bill) error {
	data, err := encodeBills(bills)
	if err != nil {
		return err
	}
	return s.saveValue(ctx, KeyBills, data)
}

func (s *SQLiteStore) loadValue(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load record %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) saveValue(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}
