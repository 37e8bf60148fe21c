package reservationqueue

import (
	"github.com/campuslib/library-circulation-go/core"
)

const (
	queryType = "ReservationQueue"
)

// Query asks for a book's reservation queue.
type Query struct {
	ISBN core.ISBNString
}

// QueryType returns the type identifier for this query, used for logging and routing.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query with a canonicalized identifier.
func BuildQuery(isbn string) Query {
	return Query{
		ISBN: core.CanonicalizeISBN(isbn),
	}
}
