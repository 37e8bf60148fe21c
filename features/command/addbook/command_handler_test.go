package addbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/command/addbook"
	"github.com/campuslib/library-circulation-go/metadata"
	"github.com/campuslib/library-circulation-go/testutil"
)

const testISBN = "9780306406157"

var asOf = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func Test_CommandHandler_Handle_AddsValidatedRecord(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := givenHandler(store)

	command := addbook.BuildCommand(
		"978-0-306-40615-7", // hyphenated on purpose, the canonical form is the key
		"Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 3,
		asOf,
	)

	// act
	book, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ISBNString(testISBN), book.ISBN)

	stored, err := store.GetBook(context.Background(), testISBN)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)
	assert.False(t, stored.IsBorrowed)
}

func Test_CommandHandler_Handle_RejectsInvalidIdentifier(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := givenHandler(store)

	command := addbook.BuildCommand("9780306406151", "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 3, asOf)

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidIdentifier)
}

func Test_CommandHandler_Handle_RejectsMetadataMismatch(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := givenHandler(store)

	testCases := []struct {
		name    string
		command addbook.Command
	}{
		{
			name:    "wrong title",
			command: addbook.BuildCommand(testISBN, "Cell Biology", "Bruce Alberts", "Garland", 2015, "en", 3, asOf),
		},
		{
			name:    "wrong author",
			command: addbook.BuildCommand(testISBN, "Molecular Biology", "Someone Else", "Garland", 2015, "en", 3, asOf),
		},
		{
			name:    "wrong publisher",
			command: addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Elsevier", 2015, "en", 3, asOf),
		},
		{
			name:    "wrong year",
			command: addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2014, "en", 3, asOf),
		},
		{
			name:    "year before printing existed",
			command: addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 1299, "en", 3, asOf),
		},
		{
			name:    "year in the future",
			command: addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", asOf.Year()+1, "en", 3, asOf),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := handler.Handle(context.Background(), tc.command)

			// assert
			assert.ErrorIs(t, err, core.ErrMetadataMismatch)
		})
	}
}

func Test_CommandHandler_Handle_UnknownIdentifier(t *testing.T) {
	// arrange - valid checksum but the lookup source has no record
	store := testutil.NewCatalogStoreFake()
	handler := givenHandler(store)

	command := addbook.BuildCommand("9780134190440", "Some Title", "Some Author", "Some House", 2015, "en", 1, asOf)

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, metadata.ErrNotFound)
}

func Test_CommandHandler_Handle_RejectsDuplicateIdentifier(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := givenHandler(store)

	command := addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 3, asOf)

	_, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)

	// act
	_, err = handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateIdentifier)
}

func Test_CommandHandler_Handle_RejectsBadLocalFields(t *testing.T) {
	// arrange
	store := testutil.NewCatalogStoreFake()
	handler := givenHandler(store)

	testCases := []struct {
		name     string
		command  addbook.Command
		expected error
	}{
		{
			name:     "empty title",
			command:  addbook.BuildCommand(testISBN, "", "Bruce Alberts", "Garland", 2015, "en", 3, asOf),
			expected: addbook.ErrMissingTitle,
		},
		{
			name:     "empty author",
			command:  addbook.BuildCommand(testISBN, "Molecular Biology", "", "Garland", 2015, "en", 3, asOf),
			expected: addbook.ErrMissingAuthor,
		},
		{
			name:     "unsupported language",
			command:  addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "xx", 3, asOf),
			expected: addbook.ErrUnknownLanguage,
		},
		{
			name:     "zero copies",
			command:  addbook.BuildCommand(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 0, asOf),
			expected: addbook.ErrNonPositiveCopies,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := handler.Handle(context.Background(), tc.command)

			// assert
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func givenHandler(store *testutil.CatalogStoreFake) addbook.CommandHandler {
	lookup := testutil.NewLookupStub().Add(testISBN, metadata.BookMetadata{
		Title:     "Molecular Biology",
		Authors:   []string{"Bruce Alberts"},
		Publisher: "Garland",
		Year:      2015,
	})

	return addbook.NewCommandHandler(store, metadata.NewValidator(lookup))
}
