package postgresengine

import (
	"context"
	"database/sql"
	"math"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine/internal/adapters"
)

const (
	logMsgDBQueryFailed     = "database query execution failed"
	logMsgDBExecFailed      = "database statement execution failed"
	logMsgCloseRowsFailed   = "failed to close database rows"
	logMsgScanRowFailed     = "failed to scan database row"
	logMsgRowsAffectedFail  = "failed to get rows affected count"
	logMsgBeginTxFailed     = "failed to begin transaction"
	logMsgCommitTxFailed    = "failed to commit transaction"
	logMsgRollbackTxFailed  = "failed to roll back transaction"
	logMsgOperation         = "catalogstore operation: "
	logMsgSQLExecuted       = "executed sql for: "
	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrISBN             = "isbn"
	logAttrStudentID        = "student_id"
	logAttrDurationMS       = "duration_ms"
	logActionQuery          = "query"
	logActionExec           = "exec"
	logOpBookBorrowed       = "book borrowed"
	logOpBookReturned       = "book returned"
	logOpReservationTaken   = "reservation queued"
	logOpReservationPromote = "reservation promoted"
	logOpAccountRegistered  = "account registered"

	dialectPostgres = "postgres"
)

// Table base names; a configurable prefix is applied in front of each.
const (
	tableBooks        = "books"
	tableAccounts     = "accounts"
	tableStudents     = "students"
	tableLibrarians   = "librarians"
	tableBorrows      = "borrows"
	tableReservations = "reservations"
)

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// CatalogStore is the PostgreSQL-backed store for catalog, identity, and
// circulation records. It leverages a database adapter and supports
// customizable logging and table prefixing.
type CatalogStore struct {
	db          adapters.DBAdapter
	tablePrefix string
	logger      Logger
}

// Option defines a functional option for configuring CatalogStore.
type Option func(*CatalogStore) error

// WithTablePrefix sets the prefix applied to every table name.
func WithTablePrefix(prefix string) Option {
	return func(cs *CatalogStore) error {
		if prefix == "" {
			return catalogstore.ErrEmptyTablePrefix
		}

		cs.tablePrefix = prefix

		return nil
	}
}

// WithLogger sets the logger for the CatalogStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Circulation operations with durations (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(cs *CatalogStore) error {
		cs.logger = logger
		return nil
	}
}

// NewCatalogStoreFromPGXPool creates a new CatalogStore using a pgx Pool with optional configuration.
func NewCatalogStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (CatalogStore, error) {
	if db == nil {
		return CatalogStore{}, catalogstore.ErrNilDatabaseConnection
	}

	cs := CatalogStore{db: adapters.NewPGXAdapter(db)}

	for _, option := range options {
		if err := option(&cs); err != nil {
			return CatalogStore{}, err
		}
	}

	return cs, nil
}

// NewCatalogStoreFromSQLDB creates a new CatalogStore using a sql.DB with optional configuration.
func NewCatalogStoreFromSQLDB(db *sql.DB, options ...Option) (CatalogStore, error) {
	if db == nil {
		return CatalogStore{}, catalogstore.ErrNilDatabaseConnection
	}

	cs := CatalogStore{db: adapters.NewSQLAdapter(db)}

	for _, option := range options {
		if err := option(&cs); err != nil {
			return CatalogStore{}, err
		}
	}

	return cs, nil
}

// NewCatalogStoreFromSQLX creates a new CatalogStore using a sqlx.DB with optional configuration.
func NewCatalogStoreFromSQLX(db *sqlx.DB, options ...Option) (CatalogStore, error) {
	if db == nil {
		return CatalogStore{}, catalogstore.ErrNilDatabaseConnection
	}

	cs := CatalogStore{db: adapters.NewSQLXAdapter(db)}

	for _, option := range options {
		if err := option(&cs); err != nil {
			return CatalogStore{}, err
		}
	}

	return cs, nil
}

// table returns the prefixed name for a base table name.
func (cs CatalogStore) table(base string) string {
	return cs.tablePrefix + base
}

// withTx runs fn inside a transaction, rolling back on error and mapping
// begin/commit failures onto the store's error sentinels. Serialization
// failures and deadlocks surface as catalogstore.ErrConcurrencyConflict so
// callers can retry.
func (cs CatalogStore) withTx(ctx context.Context, fn func(tx adapters.DBTx) error) error {
	tx, beginErr := cs.db.Begin(ctx)
	if beginErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgBeginTxFailed, logAttrError, beginErr.Error())
		}

		return joinWithMappedSQLState(catalogstore.ErrTransactionFailed, beginErr)
	}

	committed := false
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				if cs.logger != nil {
					cs.logger.Warn(logMsgRollbackTxFailed, logAttrError, rollbackErr.Error())
				}
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgCommitTxFailed, logAttrError, commitErr.Error())
		}

		return joinWithMappedSQLState(catalogstore.ErrTransactionFailed, commitErr)
	}

	committed = true

	return nil
}

// executeQuery executes a SQL query on the given session and returns rows with timing information.
func (cs CatalogStore) executeQuery(ctx context.Context, session adapters.DBSession, sqlQuery string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := session.Query(ctx, sqlQuery)
	duration := time.Since(start)
	cs.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, duration, joinWithMappedSQLState(catalogstore.ErrQueryingCatalogFailed, queryErr)
	}

	return rows, duration, nil
}

// executeStatement executes a SQL statement on the given session and returns rows affected with timing information.
func (cs CatalogStore) executeStatement(ctx context.Context, session adapters.DBSession, sqlQuery string) (
	int64,
	time.Duration,
	error,
) {

	start := time.Now()
	result, execErr := session.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	cs.logQueryWithDuration(sqlQuery, logActionExec, duration)

	if execErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, duration, joinWithMappedSQLState(catalogstore.ErrExecutingCatalogFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgRowsAffectedFail, logAttrError, rowsAffectedErr.Error())
		}

		return 0, duration, joinWithMappedSQLState(catalogstore.ErrExecutingCatalogFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (cs CatalogStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if cs.logger != nil {
			cs.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (cs CatalogStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if cs.logger != nil {
		cs.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, cs.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (cs CatalogStore) logOperation(action string, args ...any) {
	if cs.logger != nil {
		cs.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (cs CatalogStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
