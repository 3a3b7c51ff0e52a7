package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/models"
	"github.com/jackc/pgerrcode"
)

// numberRepository is the PostgreSQL-backed implementation of
// [NumberRepository]. It executes all parity-record CRUD operations against
// the "parity_numbers" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type numberRepository struct {
	*DB
	logger *logger.Logger
}

// NewNumberRepository constructs a [NumberRepository] backed by the provided
// database connection and logger.
func NewNumberRepository(db *DB, logger *logger.Logger) NumberRepository {
	logger.Debug().Msg("creating number repository")
	return &numberRepository{
		DB:     db,
		logger: logger,
	}
}

// List returns one page of parity records in primary-key order.
//
// Returns an empty slice when the offset is past the end of the table.
func (r *numberRepository) List(ctx context.Context, limit, offset uint64) ([]models.Number, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNumbersQuery(limit, offset)
	if err != nil {
		log.Err(err).
			Str("func", "numberRepository.List").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "numberRepository.List").
			Uint64("limit", limit).
			Uint64("offset", offset).
			Msg("failed to execute query for listing numbers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Number, 0, limit)

	for rows.Next() {
		var number models.Number

		scanErr := rows.Scan(&number.ID, &number.Value, &number.Parity)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "numberRepository.List").
				Msg("failed to scan number row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, number)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "numberRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Count reports the total number of parity records.
func (r *numberRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var total int
	row := r.DB.QueryRowContext(ctx, countNumbers)
	if err := row.Scan(&total); err != nil {
		log.Err(err).
			Str("func", "numberRepository.Count").
			Msg("failed to count numbers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// Get retrieves a single parity record by id.
//
// Returns [ErrNumberNotFound] when no row matches.
func (r *numberRepository) Get(ctx context.Context, id int64) (models.Number, error) {
	log := logger.FromContext(ctx)

	var number models.Number
	row := r.DB.QueryRowContext(ctx, getNumberByID, id)

	if err := row.Scan(&number.ID, &number.Value, &number.Parity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Number{}, ErrNumberNotFound
		}

		log.Err(err).
			Str("func", "numberRepository.Get").
			Int64("id", id).
			Msg("failed to scan number row")
		return models.Number{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return number, nil
}

// Create persists a new parity record and returns it with the
// server-assigned id from the RETURNING clause.
func (r *numberRepository) Create(ctx context.Context, number models.Number) (models.Number, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNumber, number.Value, number.Parity)

	if err := row.Scan(&number.ID, &number.Value, &number.Parity); err != nil {
		event := log.Err(err).
			Str("func", "numberRepository.Create").
			Int64("value", number.Value).
			Str("pg_code", postgresError(err))

		if postgresError(err) == pgerrcode.UndefinedTable {
			event.Msg("parity_numbers table is missing, migrations were not applied")
		} else {
			event.Msg("failed to insert number")
		}

		return models.Number{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return number, nil
}

// Update replaces the value and parity of an existing record.
//
// The write is optimistic: when it affects zero rows the repository
// re-checks row existence and reports [ErrNumberNotFound] if the row was
// concurrently deleted, or [ErrUpdateConflict] if the row is still there
// but the write was lost to a concurrent writer.
func (r *numberRepository) Update(ctx context.Context, number models.Number) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, updateNumber, number.Value, number.Parity, number.ID)
	if err != nil {
		log.Err(err).
			Str("func", "numberRepository.Update").
			Int64("id", number.ID).
			Msg("failed to update number")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		var exists bool
		if scanErr := r.DB.QueryRowContext(ctx, numberExists, number.ID).Scan(&exists); scanErr != nil {
			log.Err(scanErr).
				Str("func", "numberRepository.Update").
				Int64("id", number.ID).
				Msg("failed to re-check row existence after empty update")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}

		if !exists {
			return ErrNumberNotFound
		}

		return ErrUpdateConflict
	}

	return nil
}

// Delete removes a parity record by id.
//
// Returns [ErrNumberNotFound] when the id does not exist, so a repeated
// delete of the same id is reported rather than silently succeeding.
func (r *numberRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNumber, id)
	if err != nil {
		log.Err(err).
			Str("func", "numberRepository.Delete").
			Int64("id", id).
			Msg("failed to delete number")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNumberNotFound
	}

	return nil
}
