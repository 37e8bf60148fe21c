package catalogstore

import (
	"errors"
)

var (
	// ErrNilDatabaseConnection is returned when a store is constructed without a database connection.
	ErrNilDatabaseConnection = errors.New("nil database connection supplied")

	// ErrEmptyTablePrefix is returned when an empty table prefix is supplied as an option.
	ErrEmptyTablePrefix = errors.New("empty table prefix supplied")

	// ErrConcurrencyConflict is returned when a transaction lost a race
	// (serialization failure or deadlock) and can be retried.
	ErrConcurrencyConflict = errors.New("concurrency conflict, transaction should be retried")

	// ErrBuildingQueryFailed is returned when SQL query building fails.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingCatalogFailed is returned when a read against the store fails.
	ErrQueryingCatalogFailed = errors.New("querying catalog store failed")

	// ErrExecutingCatalogFailed is returned when a write against the store fails.
	ErrExecutingCatalogFailed = errors.New("executing catalog store statement failed")

	// ErrScanningDBRowFailed is returned when a result row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrTransactionFailed is returned when a transaction cannot be started or committed.
	ErrTransactionFailed = errors.New("transaction begin/commit failed")

	// ErrReservationPromotionFailed is returned when the cascading borrow for
	// the earliest reservation fails during a return. The whole return rolls
	// back; the condition must be surfaced to the operator, never dropped.
	ErrReservationPromotionFailed = errors.New("promoting earliest reservation failed during return")
)
