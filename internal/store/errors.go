// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNumberNotFound is returned when a lookup, update, or delete targets
	// a parity record id that does not exist in the database.
	ErrNumberNotFound = errors.New("number was not found")

	// ErrPalindromeNotFound is returned when a lookup, update, or delete
	// targets a palindrome record id that is not held in memory.
	ErrPalindromeNotFound = errors.New("palindrome was not found")

	// ErrUpdateConflict is returned when an update writes zero rows while
	// the target row still exists, meaning a concurrent writer got there
	// first. The HTTP layer deliberately maps this to 404 — see the
	// handler's error mapping.
	ErrUpdateConflict = errors.New("update conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan number row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan number rows")
)
