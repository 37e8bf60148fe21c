// Package metadata models the bibliographic lookup collaborator and the
// cross-validation of catalog records against it.
//
// Lookup is the external collaborator: given a canonical ISBN it returns
// title, authors, publisher, and year, or fails with ErrNotFound. The
// GoogleBooksClient is the production implementation; tests substitute a stub
// so no network access is needed. Validator checks that a catalog record's
// bibliographic fields exactly match the looked-up metadata and that the
// publication year falls in the accepted range, with an explicit as-of date
// instead of process-wide "current year" state.
package metadata
