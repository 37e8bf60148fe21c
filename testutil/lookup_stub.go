package testutil

import (
	"context"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/metadata"
)

// LookupStub is a canned metadata lookup collaborator for tests.
type LookupStub struct {
	Records map[core.ISBNString]metadata.BookMetadata
	Err     error // returned for every call when set
}

// NewLookupStub creates a stub with no records.
func NewLookupStub() *LookupStub {
	return &LookupStub{Records: make(map[core.ISBNString]metadata.BookMetadata)}
}

// Add registers canned metadata for an identifier and returns the stub for chaining.
func (s *LookupStub) Add(isbn core.ISBNString, meta metadata.BookMetadata) *LookupStub {
	s.Records[isbn] = meta
	return s
}

// Lookup returns the canned metadata, the configured error, or metadata.ErrNotFound.
func (s *LookupStub) Lookup(_ context.Context, isbn core.ISBNString) (metadata.BookMetadata, error) {
	if s.Err != nil {
		return metadata.BookMetadata{}, s.Err
	}

	meta, ok := s.Records[isbn]
	if !ok {
		return metadata.BookMetadata{}, metadata.ErrNotFound
	}

	return meta, nil
}
