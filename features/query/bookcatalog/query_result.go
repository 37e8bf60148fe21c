package bookcatalog

import (
	"github.com/campuslib/library-circulation-go/core"
)

// BookCatalog represents the query result containing every catalog record,
// ordered by title.
type BookCatalog struct {
	Books []core.Book
	Count int
}
