package borrowedbooks

import (
	"context"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	queryType = "BorrowedBooks"
)

// CatalogStore defines the interface needed by the QueryHandler for catalog store operations.
type CatalogStore interface {
	ListBorrowedBooks(ctx context.Context) ([]core.Book, error)
}

// QueryHandler answers the librarian view of which catalog records are
// currently flagged as borrowed.
type QueryHandler struct {
	catalogStore CatalogStore
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(catalogStore CatalogStore) QueryHandler {
	return QueryHandler{
		catalogStore: catalogStore,
	}
}

// QueryType returns the type identifier for this query, used for logging and routing.
func (h QueryHandler) QueryType() string {
	return queryType
}

// Handle reads the current set of borrowed records.
func (h QueryHandler) Handle(ctx context.Context) (BorrowedBooks, error) {
	books, err := h.catalogStore.ListBorrowedBooks(ctx)
	if err != nil {
		return BorrowedBooks{}, err
	}

	return BorrowedBooks{
		Books: books,
		Count: len(books),
	}, nil
}
