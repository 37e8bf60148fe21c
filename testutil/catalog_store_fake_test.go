package testutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/testutil"
)

func Test_CatalogStoreFake_ReturnBook_FailedPromotion_UndoesTheWholeReturn(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	ctx := context.Background()
	now := time.Now()

	book := core.BuildBook("9780306406157", "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 2)
	require.NoError(t, store.InsertBook(ctx, book))

	holder := uuid.New()
	returning := uuid.New()

	// The queue head already holds an open borrow for this book, so the
	// cascading borrow on return cannot succeed.
	_, err := store.BorrowBook(ctx, book.ISBN, holder, now)
	require.NoError(t, err)
	_, err = store.ReserveBook(ctx, core.BuildReservation(holder, book.ISBN, now))
	require.NoError(t, err)
	_, err = store.BorrowBook(ctx, book.ISBN, returning, now)
	require.NoError(t, err)

	// act
	promoted, returnErr := store.ReturnBook(ctx, book.ISBN, returning, now.Add(time.Hour))

	// assert
	require.ErrorIs(t, returnErr, catalogstore.ErrReservationPromotionFailed)
	assert.Nil(t, promoted)

	snapshot, err := store.LoadCirculation(ctx, book.ISBN, returning)
	require.NoError(t, err)
	assert.NotNil(t, snapshot.OpenBorrow, "the return must be undone together with the failed promotion")
	assert.Equal(t, 0, snapshot.Book.Quantity)
	assert.True(t, snapshot.Book.IsBorrowed)

	holderView, err := store.LoadCirculation(ctx, book.ISBN, holder)
	require.NoError(t, err)
	assert.True(t, holderView.HasReservation, "the consumed reservation must survive the rollback")
}
