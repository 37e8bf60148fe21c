package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanPeriodDays is the fixed loan period: a borrow is due this many days after checkout.
const LoanPeriodDays = 15

// Borrow represents one checkout event. A nil ReturnedAt means the borrow is
// still open (an outstanding checkout). At most one open borrow may exist per
// (student, book) pair at a time; the circulation engine enforces this, the
// storage uniqueness constraint only covers (student, book, borrowed_at).
type Borrow struct {
	ID         uuid.UUID
	StudentID  uuid.UUID
	ISBN       ISBNString
	BorrowedAt Timestamp
	DueAt      Timestamp
	ReturnedAt *Timestamp
}

// BuildBorrow creates an open borrow record with the due date derived from the loan period.
func BuildBorrow(studentID uuid.UUID, isbn ISBNString, borrowedAt time.Time) Borrow {
	at := ToTimestamp(borrowedAt)

	return Borrow{
		ID:         uuid.New(),
		StudentID:  studentID,
		ISBN:       isbn,
		BorrowedAt: at,
		DueAt:      at.AddDate(0, 0, LoanPeriodDays),
	}
}

// IsOpen reports whether the borrow is still outstanding.
func (b Borrow) IsOpen() bool {
	return b.ReturnedAt == nil
}
