package importbooks_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/command/importbooks"
	"github.com/campuslib/library-circulation-go/metadata"
	"github.com/campuslib/library-circulation-go/testutil"
)

func Test_CommandHandler_Handle_ImportsNewRecords(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := importbooks.NewCommandHandler(store, givenLookup())
	ctx := context.Background()

	source := strings.NewReader("9780306406157\n9780134190440\n")

	// act
	report, err := handler.Handle(ctx, importbooks.BuildCommand(source, 0, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 0, report.Invalid)
	assert.Equal(t, 0, report.Missing)

	book, err := store.GetBook(ctx, "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, "Molecular Biology", book.Title)
	assert.Equal(t, "Bruce Alberts", book.Author)
	assert.Equal(t, importbooks.DefaultQuantity, book.Quantity)
	assert.Equal(t, core.LanguageCode("en"), book.Language)
}

func Test_CommandHandler_Handle_JoinsMultipleAuthors(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := importbooks.NewCommandHandler(store, givenLookup())
	ctx := context.Background()

	// act
	_, err := handler.Handle(ctx, importbooks.BuildCommand(strings.NewReader("9780134190440\n"), 0, time.Now()))

	// assert
	require.NoError(t, err)

	book, err := store.GetBook(ctx, "9780134190440")
	require.NoError(t, err)
	assert.Equal(t, "Alan A. A. Donovan, Brian W. Kernighan", book.Author)
}

func Test_CommandHandler_Handle_ClassifiesBadLines(t *testing.T) {
	// arrange - one good, one checksum failure, one unknown to the source, blanks ignored
	store := testutil.NewCatalogStoreFake()
	handler := importbooks.NewCommandHandler(store, givenLookup())

	source := strings.NewReader("9780306406157\n\n9780306406151\n097522980X\n   \n")

	// act
	report, err := handler.Handle(context.Background(), importbooks.BuildCommand(source, 0, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 1, report.Missing)
	require.Len(t, report.Lines, 3)
	assert.Equal(t, importbooks.OutcomeImported, report.Lines[0].Outcome)
	assert.Equal(t, importbooks.OutcomeInvalid, report.Lines[1].Outcome)
	assert.Equal(t, importbooks.OutcomeMissing, report.Lines[2].Outcome)
}

func Test_CommandHandler_Handle_ReRunIsIdempotent(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := importbooks.NewCommandHandler(store, givenLookup())
	ctx := context.Background()

	input := "9780306406157\n9780134190440\n"

	first, err := handler.Handle(ctx, importbooks.BuildCommand(strings.NewReader(input), 0, time.Now()))
	require.NoError(t, err)
	require.Equal(t, 2, first.Imported)

	// act
	second, err := handler.Handle(ctx, importbooks.BuildCommand(strings.NewReader(input), 0, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 2, second.Skipped)
}

func Test_CommandHandler_Handle_CanonicalizesBeforeMatching(t *testing.T) {
	// arrange - hyphenated input must hit the same record as the bare form
	store := testutil.NewCatalogStoreFake()
	handler := importbooks.NewCommandHandler(store, givenLookup())
	ctx := context.Background()

	_, err := handler.Handle(ctx, importbooks.BuildCommand(strings.NewReader("9780306406157\n"), 0, time.Now()))
	require.NoError(t, err)

	// act
	report, err := handler.Handle(ctx, importbooks.BuildCommand(strings.NewReader("978-0-306-40615-7\n"), 0, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
}

func Test_CommandHandler_Handle_OverridesDefaultQuantity(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := importbooks.NewCommandHandler(store, givenLookup())
	ctx := context.Background()

	// act
	_, err := handler.Handle(ctx, importbooks.BuildCommand(strings.NewReader("9780306406157\n"), 12, time.Now()))

	// assert
	require.NoError(t, err)

	book, err := store.GetBook(ctx, "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, 12, book.Quantity)
}

func Test_CommandHandler_Handle_AbortsOnLookupTransportFailure(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	lookup := testutil.NewLookupStub()
	lookup.Err = metadata.ErrLookupFailed
	handler := importbooks.NewCommandHandler(store, lookup)

	// act
	_, err := handler.Handle(context.Background(), importbooks.BuildCommand(strings.NewReader("9780306406157\n"), 0, time.Now()))

	// assert
	assert.ErrorIs(t, err, metadata.ErrLookupFailed)
}

func givenLookup() *testutil.LookupStub {
	return testutil.NewLookupStub().
		Add("9780306406157", metadata.BookMetadata{
			Title:     "Molecular Biology",
			Authors:   []string{"Bruce Alberts"},
			Publisher: "Garland",
			Year:      2015,
		}).
		Add("9780134190440", metadata.BookMetadata{
			Title:     "The Go Programming Language",
			Authors:   []string{"Alan A. A. Donovan", "Brian W. Kernighan"},
			Publisher: "Addison-Wesley",
			Year:      2015,
		})
}
