package store

import "errors"

// Sentinel errors returned by the journal. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrAlreadyRecorded is returned when a submission with the same message
	// id is already in the journal.
	ErrAlreadyRecorded = errors.New("submission already recorded")

	// ErrNotFound is returned when no submission matches the requested
	// message id.
	ErrNotFound = errors.New("submission not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails for a reason
	// other than a duplicate key.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading a result row fails.
	ErrScanningRows = errors.New("failed to scan submission rows")
)
