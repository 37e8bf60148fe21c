package bookcatalog

import (
	"context"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	queryType = "BookCatalog"
)

// CatalogStore defines the interface needed by the QueryHandler for catalog store operations.
type CatalogStore interface {
	ListBooks(ctx context.Context) ([]core.Book, error)
}

// QueryHandler answers the full catalog listing, borrowed and shelved alike.
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

// Handle reads the whole catalog.
func (h QueryHandler) Handle(ctx context.Context) (BookCatalog, error) {
	books, err := h.catalogStore.ListBooks(ctx)
	if err != nil {
		return BookCatalog{}, err
	}

	return BookCatalog{
		Books: books,
		Count: len(books),
	}, nil
}
