package addbook

import (
	"errors"

	"github.com/campuslib/library-circulation-go/core"
)

// Validation failures for fields the metadata lookup cannot vouch for.
var (
	ErrUnknownLanguage   = errors.New("language code is not supported")
	ErrNonPositiveCopies = errors.New("quantity must be at least one copy")
	ErrMissingTitle      = errors.New("title must not be empty")
	ErrMissingAuthor     = errors.New("author must not be empty")
)

// validateRecord checks the locally-owned fields of the record. Identifier
// checksum, year range, and bibliographic cross-validation are the metadata
// validator's job.
func validateRecord(book core.Book) error {
	if book.Title == "" {
		return ErrMissingTitle
	}

	if book.Author == "" {
		return ErrMissingAuthor
	}

	if !core.IsKnownLanguage(book.Language) {
		return ErrUnknownLanguage
	}

	if book.Quantity < 1 {
		return ErrNonPositiveCopies
	}

	return nil
}
