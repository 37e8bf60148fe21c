package postgresengine

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/campuslib/library-circulation-go/catalogstore"
)

// SQLSTATE codes the engine maps onto typed errors.
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// sqlState extracts the SQLSTATE code from a driver error,
// covering both pgx (pgconn.PgError) and lib/pq (pq.Error).
func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	return sqlState(err) == sqlStateUniqueViolation
}

// isRetryableConflict reports whether err is a serialization failure or
// deadlock that a caller may retry.
func isRetryableConflict(err error) bool {
	code := sqlState(err)
	return code == sqlStateSerializationFailure || code == sqlStateDeadlockDetected
}

// joinWithMappedSQLState wraps a driver error with the store sentinel,
// additionally joining catalogstore.ErrConcurrencyConflict when the failure
// is a retryable conflict so callers can classify with errors.Is.
func joinWithMappedSQLState(sentinel error, cause error) error {
	if isRetryableConflict(cause) {
		return errors.Join(catalogstore.ErrConcurrencyConflict, sentinel, cause)
	}

	return errors.Join(sentinel, cause)
}
