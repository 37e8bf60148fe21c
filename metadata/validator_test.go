package metadata_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/metadata"
	"github.com/campuslib/library-circulation-go/testutil"
)

const validISBN = "9780306406157"

var asOf = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func Test_Validator_Validate_AcceptsMatchingRecord(t *testing.T) {
	// arrange
	validator := metadata.NewValidator(givenLookup())
	book := core.BuildBook(validISBN, "Molecular Biology", "Bruce Alberts, Alexander Johnson", "Garland", 2015, "en", 1)

	// act + assert
	assert.NoError(t, validator.Validate(context.Background(), book, asOf))
}

func Test_Validator_Validate_AuthorOrderDoesNotMatter(t *testing.T) {
	// arrange
	validator := metadata.NewValidator(givenLookup())
	book := core.BuildBook(validISBN, "Molecular Biology", "Alexander Johnson , Bruce Alberts", "Garland", 2015, "en", 1)

	// act + assert
	assert.NoError(t, validator.Validate(context.Background(), book, asOf))
}

func Test_Validator_Validate_RejectsMismatches(t *testing.T) {
	validator := metadata.NewValidator(givenLookup())

	testCases := []struct {
		name string
		book core.Book
	}{
		{
			name: "missing author",
			book: core.BuildBook(validISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 1),
		},
		{
			name: "extra author",
			book: core.BuildBook(validISBN, "Molecular Biology", "Bruce Alberts, Alexander Johnson, Julian Lewis", "Garland", 2015, "en", 1),
		},
		{
			name: "wrong title",
			book: core.BuildBook(validISBN, "Cell Biology", "Bruce Alberts, Alexander Johnson", "Garland", 2015, "en", 1),
		},
		{
			name: "wrong year",
			book: core.BuildBook(validISBN, "Molecular Biology", "Bruce Alberts, Alexander Johnson", "Garland", 2016, "en", 1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.Validate(context.Background(), tc.book, asOf)

			assert.ErrorIs(t, err, core.ErrMetadataMismatch)
		})
	}
}

func Test_Validator_Validate_ChecksIdentifierBeforeLookup(t *testing.T) {
	// arrange - lookup would fail, but the checksum check fires first
	lookup := testutil.NewLookupStub()
	lookup.Err = metadata.ErrLookupFailed
	validator := metadata.NewValidator(lookup)

	book := core.BuildBook("9780306406151", "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 1)

	// act + assert
	assert.ErrorIs(t, validator.Validate(context.Background(), book, asOf), core.ErrInvalidIdentifier)
}

func Test_Validator_Validate_YearRangeBounds(t *testing.T) {
	validator := metadata.NewValidator(givenLookup())

	tooOld := core.BuildBook(validISBN, "Molecular Biology", "Bruce Alberts, Alexander Johnson", "Garland", metadata.MinPublicationYear-1, "en", 1)
	future := core.BuildBook(validISBN, "Molecular Biology", "Bruce Alberts, Alexander Johnson", "Garland", asOf.Year()+1, "en", 1)

	assert.ErrorIs(t, validator.Validate(context.Background(), tooOld, asOf), core.ErrMetadataMismatch)
	assert.ErrorIs(t, validator.Validate(context.Background(), future, asOf), core.ErrMetadataMismatch)
}

func givenLookup() *testutil.LookupStub {
	return testutil.NewLookupStub().Add(validISBN, metadata.BookMetadata{
		Title:     "Molecular Biology",
		Authors:   []string{"Bruce Alberts", "Alexander Johnson"},
		Publisher: "Garland",
		Year:      2015,
	})
}
