package reservationqueue_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/query/reservationqueue"
	"github.com/campuslib/library-circulation-go/testutil"
)

const testISBN = "9780306406157"

func Test_QueryHandler_Handle_ListsQueueInPromotionOrder(t *testing.T) {
	// arrange - B reserved first, then A, then C
	store := testutil.NewCatalogStoreFake()
	handler := reservationqueue.NewQueryHandler(store)
	ctx := context.Background()

	studentA := uuid.New()
	studentB := uuid.New()
	studentC := uuid.New()
	base := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	givenReservation(t, store, studentB, base)
	givenReservation(t, store, studentA, base.Add(time.Minute))
	givenReservation(t, store, studentC, base.Add(2*time.Minute))

	// act
	result, err := handler.Handle(ctx, reservationqueue.BuildQuery("978-0-306-40615-7"))

	// assert
	require.NoError(t, err)
	require.Equal(t, 3, result.Count)
	assert.Equal(t, studentB, result.Reservations[0].StudentID)
	assert.Equal(t, studentA, result.Reservations[1].StudentID)
	assert.Equal(t, studentC, result.Reservations[2].StudentID)

	assert.Equal(t, 1, result.Position(studentB))
	assert.Equal(t, 2, result.Position(studentA))
	assert.Equal(t, 0, result.Position(uuid.New()))
}

func Test_QueryHandler_Handle_EmptyQueue(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := reservationqueue.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background(), reservationqueue.BuildQuery(testISBN))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Reservations)
}

func givenReservation(t *testing.T, store *testutil.CatalogStoreFake, studentID uuid.UUID, at time.Time) {
	t.Helper()

	created, err := store.ReserveBook(context.Background(), core.BuildReservation(studentID, testISBN, at))
	require.NoError(t, err)
	require.True(t, created)
}
