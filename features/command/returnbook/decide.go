package returnbook

import (
	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
)

// Decide implements the business logic to determine whether a return should
// be processed. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with ISBN and a student with StudentID
//	WHEN: ReturnBook command is received
//	THEN: The student's open borrow is closed and the copy restocked
//	ERROR: core.ErrNoActiveBorrow if the student has no open borrow for this book
func Decide(snapshot catalogstore.CirculationSnapshot, _ Command) core.DecisionResult {
	if snapshot.OpenBorrow == nil {
		return core.ErrorDecision(core.ErrNoActiveBorrow)
	}

	return core.SuccessDecision()
}
