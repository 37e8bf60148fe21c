// Package borrowedbooks implements the Borrowed Books query.
//
// It lists the catalog records currently flagged as borrowed for the
// librarian dashboard view.
package borrowedbooks
