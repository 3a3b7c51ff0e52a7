package store

import (
	"context"

	"github.com/Lysande2902/Numeros/models"
)

// NumberRepository is the data-access contract for persisted parity records.
//
// List returns records in primary-key order; Count reports the size of the
// whole collection so callers can build pagination envelopes.
type NumberRepository interface {
	List(ctx context.Context, limit, offset uint64) ([]models.Number, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (models.Number, error)
	Create(ctx context.Context, number models.Number) (models.Number, error)
	Update(ctx context.Context, number models.Number) error
	Delete(ctx context.Context, id int64) error
}

// PalindromeRepository is the data-access contract for in-memory palindrome
// records. Implementations must serialize concurrent access; records are
// listed in insertion order and do not survive a process restart.
type PalindromeRepository interface {
	List(ctx context.Context, limit, offset uint64) ([]models.Palindrome, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (models.Palindrome, error)
	Create(ctx context.Context, palindrome models.Palindrome) (models.Palindrome, error)
	Update(ctx context.Context, palindrome models.Palindrome) error
	Delete(ctx context.Context, id int64) error
}
