package borrowedbooks_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/query/borrowedbooks"
	"github.com/campuslib/library-circulation-go/testutil"
)

func Test_QueryHandler_Handle_ListsOnlyBorrowedRecords(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowedbooks.NewQueryHandler(store)
	ctx := context.Background()

	borrowed := core.BuildBook("9780306406157", "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 2)
	shelved := core.BuildBook("9780134190440", "The Go Programming Language", "Alan A. A. Donovan", "Addison-Wesley", 2015, "en", 1)
	require.NoError(t, store.InsertBook(ctx, borrowed))
	require.NoError(t, store.InsertBook(ctx, shelved))

	_, err := store.BorrowBook(ctx, borrowed.ISBN, uuid.New(), time.Now())
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, borrowed.ISBN, result.Books[0].ISBN)
	assert.True(t, result.Books[0].IsBorrowed)
}

func Test_QueryHandler_Handle_EmptyCatalog(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowedbooks.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Books)
}
