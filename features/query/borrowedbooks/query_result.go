package borrowedbooks

import (
	"github.com/campuslib/library-circulation-go/core"
)

// BorrowedBooks represents the query result containing all catalog records
// currently flagged as borrowed, ordered by title.
type BorrowedBooks struct {
	Books []core.Book
	Count int
}
