package store

import (
	"context"
	"fmt"

	"github.com/Lysande2902/Numeros/internal/config"
	"github.com/Lysande2902/Numeros/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	NumberRepository     NumberRepository
	PalindromeRepository PalindromeRepository

	db *DB
}

// NewStorages connects to Postgres, applies pending migrations, and wires
// both repositories: the Postgres-backed parity store and the in-memory
// palindrome store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		NumberRepository:     NewNumberRepository(db, log),
		PalindromeRepository: NewPalindromeRepository(log),
		db:                   db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
