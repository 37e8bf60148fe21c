package studentloans

import (
	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

// Loan pairs a borrow record with its computed late fee. The fee reference
// point is the return time for closed borrows and the query's AsOf for open
// ones, so an open overdue loan shows the fee it would cost if returned now.
type Loan struct {
	Borrow  core.Borrow
	LateFee int64
	Open    bool
}

// StudentLoans represents the query result: a student's borrows, newest
// first, with per-loan and total fees.
type StudentLoans struct {
	StudentID uuid.UUID
	Loans     []Loan
	TotalFees int64
	Count     int
}
