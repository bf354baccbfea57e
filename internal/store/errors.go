package store

import "errors"

// Sentinel errors returned by storage backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKVUnavailable is returned when the embedded KV engine cannot be
	// opened or has been closed.
	ErrKVUnavailable = errors.New("kv engine unavailable")

	// ErrSecureStoreUnavailable is returned when the secure key store cannot
	// be opened or used (for example, a locked or missing key file).
	ErrSecureStoreUnavailable = errors.New("secure store unavailable")

	// ErrUnknownDriver is returned when the configured backend driver is not
	// supported.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite engine when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
