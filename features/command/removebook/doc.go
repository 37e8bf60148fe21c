// Package removebook implements the Remove Book use case.
//
// Removal is addressed by canonical ISBN and is refused while any copy is
// checked out, so open borrow records never dangle. Reservations for the
// removed book are deleted with it.
package removebook
