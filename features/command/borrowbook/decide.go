package borrowbook

import (
	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
)

// Decide implements the business logic to determine whether a student may
// borrow a copy of a book. This is a pure function with no side effects - it
// takes the current circulation snapshot and a command and returns the
// decision the handler should act on.
//
// Business Rules:
//
//	GIVEN: A book with ISBN and a student with StudentID
//	WHEN: BorrowBook command is received
//	THEN: A copy is checked out for the loan period
//	ERROR: core.ErrAlreadyBorrowed if the student already holds an open borrow for this book
//	ERROR: core.ErrNoCopiesAvailable if no copy is on the shelf
//
// The store re-checks both guards inside the mutating transaction, so a
// stale snapshot can only cause a retry, never an oversell.
func Decide(snapshot catalogstore.CirculationSnapshot, _ Command) core.DecisionResult {
	if snapshot.OpenBorrow != nil {
		return core.ErrorDecision(core.ErrAlreadyBorrowed)
	}

	if !snapshot.Book.IsAvailable() {
		return core.ErrorDecision(core.ErrNoCopiesAvailable)
	}

	return core.SuccessDecision()
}
