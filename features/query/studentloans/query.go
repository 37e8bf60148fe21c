package studentloans

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	queryType = "StudentLoans"
)

// Query asks for a student's borrow history with fees computed as of a
// given time. AsOf is explicit so fee amounts stay deterministic in tests.
type Query struct {
	StudentID uuid.UUID
	AsOf      core.Timestamp
}

// QueryType returns the type identifier for this query, used for logging and routing.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query.
func BuildQuery(studentID uuid.UUID, asOf time.Time) Query {
	return Query{
		StudentID: studentID,
		AsOf:      core.ToTimestamp(asOf),
	}
}
