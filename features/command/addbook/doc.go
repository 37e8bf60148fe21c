// Package addbook implements the Add Book use case.
//
// A new catalog record passes three gates before insertion: local field
// checks (title, author, supported language, at least one copy), identifier
// checksum validation, and bibliographic cross-validation against the
// metadata lookup (exact title, publisher, and year, author set equality).
// The canonical ISBN is the unique key, so a duplicate insert fails with
// core.ErrDuplicateIdentifier.
package addbook
