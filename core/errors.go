package core

import "errors"

var (
	// ErrAlreadyBorrowed is returned when a student already holds an open borrow for the same book.
	ErrAlreadyBorrowed = errors.New("book is already borrowed by this student and not yet returned")

	// ErrNoCopiesAvailable is returned when a borrow is attempted against a book with zero copies left.
	ErrNoCopiesAvailable = errors.New("no copies available")

	// ErrNoActiveBorrow is returned when a return is attempted without an open borrow record.
	ErrNoActiveBorrow = errors.New("no active borrow record for this student and book")

	// ErrCopiesAvailable is returned when a reservation is attempted while copies are on the shelf.
	ErrCopiesAvailable = errors.New("copies are available, the book can be borrowed instead of reserved")

	// ErrUnrecognizedDomain is returned when an email address does not belong to the institution.
	ErrUnrecognizedDomain = errors.New("email domain is not recognized by this institution")

	// ErrMetadataMismatch is returned when bibliographic fields fail cross-validation against looked-up metadata.
	ErrMetadataMismatch = errors.New("bibliographic fields do not match looked-up metadata")

	// ErrInvalidIdentifier is returned when an identifier fails the ISBN-10/13 checksum.
	ErrInvalidIdentifier = errors.New("identifier is not a valid ISBN-10 or ISBN-13")

	// ErrDuplicateIdentifier is returned when a book with the same identifier already exists in the catalog.
	ErrDuplicateIdentifier = errors.New("a book with this identifier already exists")

	// ErrBookNotFound is returned when no book with the given identifier exists in the catalog.
	ErrBookNotFound = errors.New("book not found in catalog")

	// ErrStudentNotFound is returned when no student profile exists for the given identity.
	ErrStudentNotFound = errors.New("student not found")

	// ErrLibrarianNotFound is returned when no librarian profile exists for the given identity.
	ErrLibrarianNotFound = errors.New("librarian not found")

	// ErrDuplicateAccount is returned when registering with an email or numeric ID that is already taken.
	ErrDuplicateAccount = errors.New("an account with this email or ID already exists")
)
