package studentloans

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStore defines the interface needed by the QueryHandler for catalog store operations.
type CatalogStore interface {
	ListStudentBorrows(ctx context.Context, studentID uuid.UUID) ([]core.Borrow, error)
}

// QueryHandler answers a student's loan history with computed late fees.
type QueryHandler struct {
	catalogStore CatalogStore
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(catalogStore CatalogStore) QueryHandler {
	return QueryHandler{
		catalogStore: catalogStore,
	}
}

// Handle reads the student's borrows and computes the fee for each one as of
// the query's reference time.
func (h QueryHandler) Handle(ctx context.Context, query Query) (StudentLoans, error) {
	borrows, err := h.catalogStore.ListStudentBorrows(ctx, query.StudentID)
	if err != nil {
		return StudentLoans{}, err
	}

	result := StudentLoans{
		StudentID: query.StudentID,
		Loans:     make([]Loan, 0, len(borrows)),
	}

	for _, borrow := range borrows {
		loan := Loan{
			Borrow:  borrow,
			LateFee: borrow.LateFee(query.AsOf),
			Open:    borrow.IsOpen(),
		}

		result.Loans = append(result.Loans, loan)
		result.TotalFees += loan.LateFee
	}

	result.Count = len(result.Loans)

	return result, nil
}
