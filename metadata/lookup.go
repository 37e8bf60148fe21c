package metadata

import (
	"context"
	"errors"

	"github.com/campuslib/library-circulation-go/core"
)

var (
	// ErrNotFound is returned when the collaborator has no metadata for the identifier.
	ErrNotFound = errors.New("no metadata found for identifier")

	// ErrLookupFailed is returned when the collaborator could not be reached or answered garbage.
	ErrLookupFailed = errors.New("metadata lookup failed")
)

// BookMetadata is the bibliographic record returned by the lookup collaborator.
type BookMetadata struct {
	Title     string
	Authors   []string
	Publisher string
	Year      int
}

// Lookup is the external metadata collaborator.
type Lookup interface {
	Lookup(ctx context.Context, isbn core.ISBNString) (BookMetadata, error)
}
