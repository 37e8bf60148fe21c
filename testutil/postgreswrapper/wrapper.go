package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine"
	"github.com/campuslib/library-circulation-go/shell/config"
)

// Adapter type constants
const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
)

// Wrapper interface to abstract over the different adapter types
type Wrapper interface {
	GetCatalogStore() postgresengine.CatalogStore
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool  *pgxpool.Pool
	store postgresengine.CatalogStore
}

func (w *PGXPoolWrapper) GetCatalogStore() postgresengine.CatalogStore {
	return w.store
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db    *sql.DB
	store postgresengine.CatalogStore
}

func (w *SQLDBWrapper) GetCatalogStore() postgresengine.CatalogStore {
	return w.store
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing
type SQLXWrapper struct {
	db    *sqlx.DB
	store postgresengine.CatalogStore
}

func (w *SQLXWrapper) GetCatalogStore() postgresengine.CatalogStore {
	return w.store
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the appropriate wrapper based on the environment variable.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterTypeFromEnv {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolConfig())
		assert.NoError(t, err, "error connecting to DB pool in test setup")

		store, err := postgresengine.NewCatalogStoreFromPGXPool(connPool, options...)
		assert.NoError(t, err, "error creating catalog store")

		return &PGXPoolWrapper{pool: connPool, store: store}

	case typeSQLDB:
		db := config.PostgresSQLDBConfig()

		store, err := postgresengine.NewCatalogStoreFromSQLDB(db, options...)
		assert.NoError(t, err, "error creating catalog store")

		return &SQLDBWrapper{db: db, store: store}

	case typeSQLXDB:
		db := config.PostgresSQLXConfig()

		store, err := postgresengine.NewCatalogStoreFromSQLX(db, options...)
		assert.NoError(t, err, "error creating catalog store")

		return &SQLXWrapper{db: db, store: store}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}
}

// TryCreateCatalogStore tries to create a catalog store with the given options
// and returns the error (for testing error cases).
func TryCreateCatalogStore(t testing.TB, options ...postgresengine.Option) error {
	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterTypeFromEnv {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolConfig())
		assert.NoError(t, err, "error connecting to DB pool in test setup")
		defer connPool.Close()

		_, err = postgresengine.NewCatalogStoreFromPGXPool(connPool, options...)

		return err

	case typeSQLDB:
		db := config.PostgresSQLDBConfig()
		defer func(db *sql.DB) {
			_ = db.Close() // makes no sense to handle this
		}(db)

		_, err := postgresengine.NewCatalogStoreFromSQLDB(db, options...)

		return err

	case typeSQLXDB:
		db := config.PostgresSQLXConfig()
		defer func(db *sqlx.DB) {
			_ = db.Close() // makes no sense to handle this
		}(db)

		_, err := postgresengine.NewCatalogStoreFromSQLX(db, options...)

		return err

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}
}

// EnsureSchema creates the catalog tables for the wrapped store if needed.
func EnsureSchema(t testing.TB, wrapper Wrapper) {
	err := wrapper.GetCatalogStore().CreateSchema(context.Background())
	assert.NoError(t, err, "error creating the catalog schema")
}

// CleanUp truncates all catalog tables for the given wrapper.
func CleanUp(t testing.TB, wrapper Wrapper) {
	const truncate = "TRUNCATE TABLE books, accounts, students, librarians, borrows, reservations"

	switch w := wrapper.(type) {
	case *PGXPoolWrapper:
		_, err := w.pool.Exec(context.Background(), truncate)
		assert.NoError(t, err, "error cleaning up the catalog tables")

	case *SQLDBWrapper:
		_, err := w.db.Exec(truncate)
		assert.NoError(t, err, "error cleaning up the catalog tables")

	case *SQLXWrapper:
		_, err := w.db.Exec(truncate)
		assert.NoError(t, err, "error cleaning up the catalog tables")

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", w))
	}
}
