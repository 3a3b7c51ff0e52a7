package store

import (
	"context"
	"sync"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/models"
)

// palindromeRepository is the in-memory implementation of
// [PalindromeRepository].
//
// Records live in an insertion-ordered slice guarded by a single mutex, so
// all access is serialized and concurrent requests cannot lose updates.
// The collection is process-wide state: ids restart at 1 and all records
// vanish when the process exits.
type palindromeRepository struct {
	mu     sync.Mutex
	items  []models.Palindrome
	nextID int64

	logger *logger.Logger
}

// NewPalindromeRepository constructs an empty in-memory
// [PalindromeRepository].
func NewPalindromeRepository(logger *logger.Logger) PalindromeRepository {
	logger.Debug().Msg("creating palindrome repository")
	return &palindromeRepository{
		items:  make([]models.Palindrome, 0, 16),
		nextID: 1,
		logger: logger,
	}
}

// List returns one page of palindrome records in insertion order.
//
// Returns an empty slice when the offset is past the end of the collection.
func (r *palindromeRepository) List(_ context.Context, limit, offset uint64) ([]models.Palindrome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset >= uint64(len(r.items)) {
		return []models.Palindrome{}, nil
	}

	end := offset + limit
	if end > uint64(len(r.items)) {
		end = uint64(len(r.items))
	}

	// copy so callers never alias the guarded backing slice
	page := make([]models.Palindrome, end-offset)
	copy(page, r.items[offset:end])

	return page, nil
}

// Count reports the total number of palindrome records.
func (r *palindromeRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items), nil
}

// Get retrieves a single palindrome record by id.
//
// Returns [ErrPalindromeNotFound] when no record matches.
func (r *palindromeRepository) Get(_ context.Context, id int64) (models.Palindrome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}

	return models.Palindrome{}, ErrPalindromeNotFound
}

// Create stores a new palindrome record and returns it with the next
// server-assigned id.
func (r *palindromeRepository) Create(_ context.Context, palindrome models.Palindrome) (models.Palindrome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	palindrome.ID = r.nextID
	r.nextID++
	r.items = append(r.items, palindrome)

	return palindrome, nil
}

// Update replaces the stored record with the same id in place, keeping its
// position in the insertion order.
//
// Returns [ErrPalindromeNotFound] when the id does not exist.
func (r *palindromeRepository) Update(_ context.Context, palindrome models.Palindrome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == palindrome.ID {
			r.items[i] = palindrome
			return nil
		}
	}

	return ErrPalindromeNotFound
}

// Delete removes a palindrome record by id.
//
// Returns [ErrPalindromeNotFound] when the id does not exist, so deleting
// the same id twice reports the second attempt.
func (r *palindromeRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}

	return ErrPalindromeNotFound
}
