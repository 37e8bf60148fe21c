// Package bookcatalog implements the Book Catalog query.
//
// It lists every catalog record ordered by title, the browsing view shared
// by students and librarians.
package bookcatalog
