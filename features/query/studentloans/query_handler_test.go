package studentloans_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/query/studentloans"
	"github.com/campuslib/library-circulation-go/testutil"
)

const (
	overdueISBN = "9780306406157"
	onTimeISBN  = "9780134190440"
)

func Test_QueryHandler_Handle_ComputesFeesPerLoan(t *testing.T) {
	// arrange - one loan three days overdue, one well within the period
	store := testutil.NewCatalogStoreFake()
	handler := studentloans.NewQueryHandler(store)
	ctx := context.Background()

	studentID := uuid.New()
	asOf := time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC)

	givenBookInCatalog(t, store, overdueISBN)
	givenBookInCatalog(t, store, onTimeISBN)

	overdueStart := asOf.AddDate(0, 0, -(core.LoanPeriodDays + 3))
	_, err := store.BorrowBook(ctx, overdueISBN, studentID, overdueStart)
	require.NoError(t, err)

	_, err = store.BorrowBook(ctx, onTimeISBN, studentID, asOf.AddDate(0, 0, -1))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, studentloans.BuildQuery(studentID, asOf))

	// assert - newest first
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)

	assert.Equal(t, core.ISBNString(onTimeISBN), result.Loans[0].Borrow.ISBN)
	assert.Equal(t, int64(0), result.Loans[0].LateFee)
	assert.True(t, result.Loans[0].Open)

	assert.Equal(t, core.ISBNString(overdueISBN), result.Loans[1].Borrow.ISBN)
	assert.Equal(t, int64(3*core.LateFeePerDayUnits), result.Loans[1].LateFee)

	assert.Equal(t, int64(3*core.LateFeePerDayUnits), result.TotalFees)
}

func Test_QueryHandler_Handle_ClosedLoanChargedAtReturnTime(t *testing.T) {
	// arrange - returned two days late, queried much later
	store := testutil.NewCatalogStoreFake()
	handler := studentloans.NewQueryHandler(store)
	ctx := context.Background()

	studentID := uuid.New()
	borrowedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	givenBookInCatalog(t, store, overdueISBN)

	_, err := store.BorrowBook(ctx, overdueISBN, studentID, borrowedAt)
	require.NoError(t, err)

	returnedAt := borrowedAt.AddDate(0, 0, core.LoanPeriodDays+2)
	_, err = store.ReturnBook(ctx, overdueISBN, studentID, returnedAt)
	require.NoError(t, err)

	// act - asOf far in the future must not grow the fee
	result, err := handler.Handle(ctx, studentloans.BuildQuery(studentID, returnedAt.AddDate(1, 0, 0)))

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.False(t, result.Loans[0].Open)
	assert.Equal(t, int64(2*core.LateFeePerDayUnits), result.Loans[0].LateFee)
}

func Test_QueryHandler_Handle_EmptyHistory(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := studentloans.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background(), studentloans.BuildQuery(uuid.New(), time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Loans)
	assert.Equal(t, int64(0), result.TotalFees)
}

func givenBookInCatalog(t *testing.T, store *testutil.CatalogStoreFake, isbn string) {
	t.Helper()

	book := core.BuildBook(isbn, "Some Title", "Some Author", "Some House", 2015, "en", 3)

	require.NoError(t, store.InsertBook(context.Background(), book))
}
