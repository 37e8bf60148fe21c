package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campuslib/library-circulation-go/core"
)

// MinPublicationYear is the earliest publication year the catalog accepts.
const MinPublicationYear = 1300

// Validator cross-validates a catalog record's bibliographic fields against
// the lookup collaborator. Title, publisher, and year must match exactly;
// the comma-separated author field must match the looked-up author set.
type Validator struct {
	lookup Lookup
}

// NewValidator creates a validator backed by the given lookup collaborator.
func NewValidator(lookup Lookup) Validator {
	return Validator{lookup: lookup}
}

// Validate checks the record's identifier, publication year range, and
// bibliographic fields. The asOf date bounds the year range explicitly so
// validation stays deterministic in tests.
//
// Returns core.ErrInvalidIdentifier, core.ErrMetadataMismatch (wrapped with
// the offending field), ErrNotFound, or a lookup failure.
func (v Validator) Validate(ctx context.Context, book core.Book, asOf time.Time) error {
	if err := core.ValidateISBN(book.ISBN); err != nil {
		return err
	}

	if book.Year < MinPublicationYear || book.Year > asOf.Year() {
		return errors.Join(
			core.ErrMetadataMismatch,
			fmt.Errorf("year must be between %d and %d", MinPublicationYear, asOf.Year()),
		)
	}

	meta, lookupErr := v.lookup.Lookup(ctx, book.ISBN)
	if lookupErr != nil {
		return lookupErr
	}

	if meta.Title != book.Title {
		return errors.Join(core.ErrMetadataMismatch, errors.New("title does not match metadata"))
	}

	if !sameAuthorSet(meta.Authors, book.Author) {
		return errors.Join(core.ErrMetadataMismatch, errors.New("authors do not match metadata"))
	}

	if meta.Publisher != book.Publisher {
		return errors.Join(core.ErrMetadataMismatch, errors.New("publisher does not match metadata"))
	}

	if meta.Year != book.Year {
		return errors.Join(core.ErrMetadataMismatch, errors.New("year does not match metadata"))
	}

	return nil
}

// sameAuthorSet compares the looked-up author list against the record's
// comma-separated author field, ignoring order.
func sameAuthorSet(authors []string, authorField string) bool {
	recorded := make(map[string]struct{})

	for _, author := range strings.Split(authorField, ",") {
		trimmed := strings.TrimSpace(author)
		if trimmed != "" {
			recorded[trimmed] = struct{}{}
		}
	}

	if len(recorded) != len(authors) {
		return false
	}

	for _, author := range authors {
		if _, ok := recorded[author]; !ok {
			return false
		}
	}

	return true
}
