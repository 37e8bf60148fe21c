package reservebook

import (
	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
)

// Decide implements the business logic to determine whether a student should
// be queued for a book. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with ISBN and a student with StudentID
//	WHEN: ReserveBook command is received
//	THEN: The student joins the book's FIFO reservation queue
//	ERROR: core.ErrAlreadyBorrowed if the student currently holds a copy of this book
//	ERROR: core.ErrCopiesAvailable if a copy is on the shelf (borrow it instead)
//	IDEMPOTENCY: If the student is already queued, no new reservation is created (no-op)
func Decide(snapshot catalogstore.CirculationSnapshot, _ Command) core.DecisionResult {
	if snapshot.HasReservation {
		return core.IdempotentDecision() // already queued, keep the original position
	}

	if snapshot.OpenBorrow != nil {
		return core.ErrorDecision(core.ErrAlreadyBorrowed)
	}

	if snapshot.Book.IsAvailable() {
		return core.ErrorDecision(core.ErrCopiesAvailable)
	}

	return core.SuccessDecision()
}
