package studentroster

import (
	"github.com/campuslib/library-circulation-go/core"
)

// StudentRoster represents the query result containing all registered student
// profiles, ordered by last then first name.
type StudentRoster struct {
	Students []core.Student
	Count    int
}
