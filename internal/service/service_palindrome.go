package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/store"
	"github.com/Lysande2902/Numeros/models"
)

// palindromeService is the concrete implementation of PalindromeService.
// It validates submitted text, derives the palindrome flag, and delegates
// storage to the injected repository.
type palindromeService struct {
	palindromeRepository store.PalindromeRepository

	logger *logger.Logger
}

// NewPalindromeService constructs a PalindromeService wired to the given
// repository.
func NewPalindromeService(palindromeRepository store.PalindromeRepository, logger *logger.Logger) PalindromeService {
	return &palindromeService{
		palindromeRepository: palindromeRepository,
		logger:               logger,
	}
}

// validateText checks the submitted text before normalization. The checks
// run in a fixed order and the first failing one wins:
//  1. empty or whitespace-only → ErrEmptyText
//  2. contains a space after trimming → ErrMultipleWords
//  3. any rune that is not a letter → ErrNotOnlyLetters
//
// unicode.IsLetter accepts accented Latin letters (á, ñ, ...), matching the
// accepted letter set.
func validateText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyText
	}

	if strings.Contains(trimmed, " ") {
		return ErrMultipleWords
	}

	for _, r := range trimmed {
		if !unicode.IsLetter(r) {
			return ErrNotOnlyLetters
		}
	}

	return nil
}

// List returns one page of palindrome records wrapped in a pagination
// envelope, with the same clamping rules as the parity collection.
func (s *palindromeService) List(ctx context.Context, page, pageSize int) (models.PaginatedResponse[models.Palindrome], error) {
	log := logger.FromContext(ctx)

	page = clampPage(page)
	pageSize = clampPageSize(pageSize)

	total, err := s.palindromeRepository.Count(ctx)
	if err != nil {
		log.Err(err).Msg("counting palindromes failed")
		return models.PaginatedResponse[models.Palindrome]{}, fmt.Errorf("counting palindromes failed: %w", err)
	}

	palindromes, err := s.palindromeRepository.List(ctx, uint64(pageSize), pageOffset(page, pageSize))
	if err != nil {
		log.Err(err).Int("page", page).Int("pageSize", pageSize).Msg("listing palindromes failed")
		return models.PaginatedResponse[models.Palindrome]{}, fmt.Errorf("listing palindromes failed: %w", err)
	}

	return models.NewPaginatedResponse(palindromes, page, pageSize, total), nil
}

// Get looks up a single palindrome record by id.
func (s *palindromeService) Get(ctx context.Context, id int64) (models.Palindrome, error) {
	return s.palindromeRepository.Get(ctx, id)
}

// Create validates the text, derives the palindrome flag over the
// lowercased trimmed word, and stores the record.
func (s *palindromeService) Create(ctx context.Context, text string) (models.Palindrome, error) {
	log := logger.FromContext(ctx)

	if err := validateText(text); err != nil {
		log.Error().Str("text", text).Err(err).Msg("palindrome text rejected")
		return models.Palindrome{}, err
	}

	palindrome := models.Palindrome{Text: text}
	palindrome.DeriveIsPalindrome()

	created, err := s.palindromeRepository.Create(ctx, palindrome)
	if err != nil {
		log.Err(err).Msg("palindrome creation ended with error")
		return models.Palindrome{}, fmt.Errorf("palindrome creation ended with error: %w", err)
	}

	return created, nil
}

// Update mutates the record in place with the same precondition and
// derivation logic as Create. There is no body-id check for this resource;
// the path id alone identifies the record.
func (s *palindromeService) Update(ctx context.Context, id int64, text string) error {
	log := logger.FromContext(ctx)

	if _, err := s.palindromeRepository.Get(ctx, id); err != nil {
		return err
	}

	if err := validateText(text); err != nil {
		log.Error().Str("text", text).Err(err).Msg("palindrome text rejected")
		return err
	}

	palindrome := models.Palindrome{ID: id, Text: text}
	palindrome.DeriveIsPalindrome()

	return s.palindromeRepository.Update(ctx, palindrome)
}

// Delete removes a palindrome record by id; deleting a missing id reports
// store.ErrPalindromeNotFound rather than succeeding.
func (s *palindromeService) Delete(ctx context.Context, id int64) error {
	return s.palindromeRepository.Delete(ctx, id)
}
