package service

import (
	"context"
	"fmt"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/store"
	"github.com/Lysande2902/Numeros/models"
)

// numberService is the concrete implementation of NumberService. It owns
// input validation, parity derivation, and pagination arithmetic; all
// persistence goes through the injected repository so the service does not
// assume which store backs the collection.
type numberService struct {
	numberRepository store.NumberRepository

	logger *logger.Logger
}

// NewNumberService constructs a NumberService wired to the given repository.
func NewNumberService(numberRepository store.NumberRepository, logger *logger.Logger) NumberService {
	return &numberService{
		numberRepository: numberRepository,
		logger:           logger,
	}
}

// List returns one page of parity records wrapped in a pagination envelope.
//
// page is clamped to ≥1 and pageSize to [1,100] with a default of 10, so
// the call never fails on out-of-range input; an offset past the end of the
// collection yields an empty page.
func (s *numberService) List(ctx context.Context, page, pageSize int) (models.PaginatedResponse[models.Number], error) {
	log := logger.FromContext(ctx)

	page = clampPage(page)
	pageSize = clampPageSize(pageSize)

	total, err := s.numberRepository.Count(ctx)
	if err != nil {
		log.Err(err).Msg("counting numbers failed")
		return models.PaginatedResponse[models.Number]{}, fmt.Errorf("counting numbers failed: %w", err)
	}

	numbers, err := s.numberRepository.List(ctx, uint64(pageSize), pageOffset(page, pageSize))
	if err != nil {
		log.Err(err).Int("page", page).Int("pageSize", pageSize).Msg("listing numbers failed")
		return models.PaginatedResponse[models.Number]{}, fmt.Errorf("listing numbers failed: %w", err)
	}

	return models.NewPaginatedResponse(numbers, page, pageSize, total), nil
}

// Get looks up a single parity record by id.
func (s *numberService) Get(ctx context.Context, id int64) (models.Number, error) {
	return s.numberRepository.Get(ctx, id)
}

// Create validates the value, derives its parity, and persists the record.
//
// Returns ErrNegativeNumber for values below zero. The parity field is
// always recomputed server-side; nothing the client sends for it survives.
func (s *numberService) Create(ctx context.Context, value int64) (models.Number, error) {
	log := logger.FromContext(ctx)

	if value < 0 {
		log.Error().Int64("value", value).Msg("negative number rejected")
		return models.Number{}, ErrNegativeNumber
	}

	number := models.Number{Value: value}
	number.DeriveParity()

	created, err := s.numberRepository.Create(ctx, number)
	if err != nil {
		log.Err(err).Int64("value", value).Msg("number creation ended with error")
		return models.Number{}, fmt.Errorf("number creation ended with error: %w", err)
	}

	return created, nil
}

// Update performs a full replace of the record identified by pathID.
//
// The id in the path must equal the id in the body (ErrIDMismatch
// otherwise); the value passes the same precondition and derivation as
// Create. Repository-level conflict and not-found outcomes pass through
// unchanged for the transport layer to map.
func (s *numberService) Update(ctx context.Context, pathID int64, number models.Number) error {
	log := logger.FromContext(ctx)

	if pathID != number.ID {
		log.Error().Int64("path_id", pathID).Int64("body_id", number.ID).Msg("id mismatch")
		return ErrIDMismatch
	}

	if number.Value < 0 {
		log.Error().Int64("value", number.Value).Msg("negative number rejected")
		return ErrNegativeNumber
	}

	number.DeriveParity()

	return s.numberRepository.Update(ctx, number)
}

// Delete removes a parity record by id; deleting a missing id reports
// store.ErrNumberNotFound rather than succeeding.
func (s *numberService) Delete(ctx context.Context, id int64) error {
	return s.numberRepository.Delete(ctx, id)
}
