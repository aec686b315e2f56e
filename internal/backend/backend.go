// Package backend selects and constructs the persistence store from
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/config"
	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/storage"
)

// Type represents the configured store kind.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	default:
		return false
	}
}

// CleanupFunc releases the store's resources.
type CleanupFunc func() error

// New builds the store named by the configuration and a cleanup function
// for shutdown.
func New(cfg *config.Config, logger *slog.Logger) (storage.Store, CleanupFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLite:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return store, store.Close, nil
	default:
		store := storage.NewMemoryStore()
		logger.Info("Initialized memory backend")
		return store, store.Close, nil
	}
}
