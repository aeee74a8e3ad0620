package store

import "errors"

var (
	// ErrUnsupportedDatabaseType is returned for an engine name other than
	// postgresql or sqlite.
	ErrUnsupportedDatabaseType = errors.New("unsupported database type")

	// ErrReadingScript is returned when a script file cannot be read.
	ErrReadingScript = errors.New("error reading sql script")

	// ErrBeginningTransaction is returned when the driver cannot start the
	// transaction a script runs in.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrExecutingScript is returned when the database rejects a script.
	// The script's own statements are rolled back.
	ErrExecutingScript = errors.New("failed to execute sql script")

	// ErrCommitingTransaction is returned when committing a script fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrBuildingSQLQuery is returned when a query cannot be built.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the version lookup fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
