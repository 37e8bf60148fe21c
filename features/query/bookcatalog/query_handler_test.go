package bookcatalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/query/bookcatalog"
	"github.com/campuslib/library-circulation-go/testutil"
)

func Test_QueryHandler_Handle_ListsTheWholeCatalogByTitle(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := bookcatalog.NewQueryHandler(store)
	ctx := context.Background()

	second := core.BuildBook("9780306406157", "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 2)
	first := core.BuildBook("9780134190440", "The Go Programming Language", "Alan A. A. Donovan", "Addison-Wesley", 2015, "en", 1)
	require.NoError(t, store.InsertBook(ctx, second))
	require.NoError(t, store.InsertBook(ctx, first))

	_, err := store.BorrowBook(ctx, second.ISBN, uuid.New(), time.Now())
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx)

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, second.ISBN, result.Books[0].ISBN, "titles sort Molecular before The Go")
	assert.Equal(t, first.ISBN, result.Books[1].ISBN)
	assert.True(t, result.Books[0].IsBorrowed, "borrowed records stay listed")
}

func Test_QueryHandler_Handle_EmptyCatalog(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := bookcatalog.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Books)
}
