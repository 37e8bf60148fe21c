package catalogstore

import (
	"github.com/campuslib/library-circulation-go/core"
)

// CirculationSnapshot is the state a circulation decision is made against:
// the book row plus the requesting student's relationship to it. It is loaded
// in one read; the store re-checks the guards inside the mutating transaction,
// so a stale snapshot can only cause a retry, never an inconsistent write.
type CirculationSnapshot struct {
	Book           core.Book
	OpenBorrow     *core.Borrow // the student's open borrow for this book, nil if none
	HasReservation bool         // whether the student is already queued for this book
}
