package borrowbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/command/borrowbook"
	"github.com/campuslib/library-circulation-go/testutil"
)

func Test_CommandHandler_Handle_ChecksOutACopy(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowbook.NewCommandHandler(store)
	ctx := context.Background()

	studentID := uuid.New()
	now := time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC)

	givenBookInCatalog(t, store, testISBN, 2)

	// act
	borrow, err := handler.Handle(ctx, borrowbook.BuildCommand(testISBN, studentID, now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, studentID, borrow.StudentID)
	assert.Equal(t, core.ISBNString(testISBN), borrow.ISBN)
	assert.Equal(t, core.ToTimestamp(now).AddDate(0, 0, core.LoanPeriodDays), borrow.DueAt)

	book, err := store.GetBook(ctx, testISBN)
	require.NoError(t, err)
	assert.Equal(t, 1, book.Quantity)
	assert.True(t, book.IsBorrowed)
	require.NotNil(t, book.BorrowedBy)
	assert.Equal(t, studentID, *book.BorrowedBy)
}

func Test_CommandHandler_Handle_AcceptsHyphenatedIdentifier(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowbook.NewCommandHandler(store)
	ctx := context.Background()

	givenBookInCatalog(t, store, testISBN, 1)

	// act
	borrow, err := handler.Handle(ctx, borrowbook.BuildCommand("978-0-306-40615-7", uuid.New(), time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ISBNString(testISBN), borrow.ISBN)
}

func Test_CommandHandler_Handle_RejectsDuplicateOpenBorrow(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowbook.NewCommandHandler(store)
	ctx := context.Background()

	studentID := uuid.New()

	givenBookInCatalog(t, store, testISBN, 3)

	_, err := handler.Handle(ctx, borrowbook.BuildCommand(testISBN, studentID, time.Now()))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, borrowbook.BuildCommand(testISBN, studentID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrAlreadyBorrowed)

	book, getErr := store.GetBook(ctx, testISBN)
	require.NoError(t, getErr)
	assert.Equal(t, 2, book.Quantity) // the rejected attempt must not decrement
}

func Test_CommandHandler_Handle_FailsWithoutMutationWhenShelfEmpty(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowbook.NewCommandHandler(store)
	ctx := context.Background()

	givenBookInCatalog(t, store, testISBN, 1)

	_, err := handler.Handle(ctx, borrowbook.BuildCommand(testISBN, uuid.New(), time.Now()))
	require.NoError(t, err)

	// act - second student wants the copy that is already out
	_, err = handler.Handle(ctx, borrowbook.BuildCommand(testISBN, uuid.New(), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNoCopiesAvailable)

	book, getErr := store.GetBook(ctx, testISBN)
	require.NoError(t, getErr)
	assert.Equal(t, 0, book.Quantity) // never negative, never mutated by the failure
}

func Test_CommandHandler_Handle_UnknownBook(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(), borrowbook.BuildCommand(testISBN, uuid.New(), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func givenBookInCatalog(t *testing.T, store *testutil.CatalogStoreFake, isbn string, quantity int) {
	t.Helper()

	book := core.BuildBook(isbn, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", quantity)

	require.NoError(t, store.InsertBook(context.Background(), book))
}
