package postgresengine_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine"
	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/shell/config"
	. "github.com/campuslib/library-circulation-go/testutil/postgreswrapper" //nolint:revive
)

func Test_FactoryFunctions_ShouldFail_WithNilDatabaseConnection(t *testing.T) {
	testCases := []struct {
		name        string
		factoryFunc func() (postgresengine.CatalogStore, error)
	}{
		{
			name: "NewCatalogStoreFromPGXPool with nil",
			factoryFunc: func() (postgresengine.CatalogStore, error) {
				return postgresengine.NewCatalogStoreFromPGXPool(nil)
			},
		},
		{
			name: "NewCatalogStoreFromSQLDB with nil",
			factoryFunc: func() (postgresengine.CatalogStore, error) {
				return postgresengine.NewCatalogStoreFromSQLDB(nil)
			},
		},
		{
			name: "NewCatalogStoreFromSQLX with nil",
			factoryFunc: func() (postgresengine.CatalogStore, error) {
				return postgresengine.NewCatalogStoreFromSQLX(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := tc.factoryFunc()

			// assert
			assert.ErrorIs(t, err, catalogstore.ErrNilDatabaseConnection)
		})
	}
}

func Test_FactoryFunctions_ShouldFail_WithEmptyTablePrefix(t *testing.T) {
	testCases := []struct {
		name        string
		factoryFunc func(t *testing.T) (postgresengine.CatalogStore, error)
	}{
		{
			name: "NewCatalogStoreFromPGXPool with empty table prefix",
			factoryFunc: func(t *testing.T) (postgresengine.CatalogStore, error) {
				connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolConfig())
				assert.NoError(t, err, "error connecting to DB pool in test setup")
				defer connPool.Close()

				return postgresengine.NewCatalogStoreFromPGXPool(connPool, postgresengine.WithTablePrefix(""))
			},
		},
		{
			name: "NewCatalogStoreFromSQLDB with empty table prefix",
			factoryFunc: func(_ *testing.T) (postgresengine.CatalogStore, error) {
				db := config.PostgresSQLDBConfig()
				defer func() { _ = db.Close() }()

				return postgresengine.NewCatalogStoreFromSQLDB(db, postgresengine.WithTablePrefix(""))
			},
		},
		{
			name: "NewCatalogStoreFromSQLX with empty table prefix",
			factoryFunc: func(_ *testing.T) (postgresengine.CatalogStore, error) {
				db := config.PostgresSQLXConfig()
				defer func() { _ = db.Close() }()

				return postgresengine.NewCatalogStoreFromSQLX(db, postgresengine.WithTablePrefix(""))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := tc.factoryFunc(t)

			// assert
			assert.ErrorIs(t, err, catalogstore.ErrEmptyTablePrefix)
		})
	}
}

func Test_FactoryFunctions_ShouldPanic_WithUnsupportedAdapterType(t *testing.T) {
	// Save the original env var
	originalAdapterType := os.Getenv("ADAPTER_TYPE")
	defer func() {
		if originalAdapterType == "" {
			err := os.Unsetenv("ADAPTER_TYPE")
			assert.NoError(t, err)
		} else {
			err := os.Setenv("ADAPTER_TYPE", originalAdapterType)
			assert.NoError(t, err)
		}
	}()

	// Set an unsupported adapter type
	err := os.Setenv("ADAPTER_TYPE", "unsupported")
	assert.NoError(t, err)

	assert.Panics(t, func() {
		createErr := TryCreateCatalogStore(t)
		assert.NoError(t, createErr)
	})
}

func Test_CatalogStore_WithTablePrefix_ShouldWorkCorrectly(t *testing.T) {
	// setup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithTablePrefix("itest_"))
	defer wrapper.Close()
	store := wrapper.GetCatalogStore()

	// arrange
	EnsureSchema(t, wrapper)
	book := core.BuildBook("9780134190440", "The Go Programming Language", "Alan A. A. Donovan", "Addison-Wesley", 2015, "en", 1)

	if err := store.DeleteBook(ctx, book.ISBN); err != nil {
		require.ErrorIs(t, err, core.ErrBookNotFound)
	}

	// act
	insertErr := store.InsertBook(ctx, book)
	stored, getErr := store.GetBook(ctx, book.ISBN)

	// assert
	require.NoError(t, insertErr)
	require.NoError(t, getErr)
	assert.Equal(t, book.Title, stored.Title)

	require.NoError(t, store.DeleteBook(ctx, book.ISBN))
}
