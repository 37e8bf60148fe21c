package studentroster

import (
	"context"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	queryType = "StudentRoster"
)

// CatalogStore defines the interface needed by the QueryHandler for catalog store operations.
type CatalogStore interface {
	ListStudents(ctx context.Context) ([]core.Student, error)
}

// QueryHandler answers the librarian's roster of registered students.
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

// Handle reads all registered student profiles.
func (h QueryHandler) Handle(ctx context.Context) (StudentRoster, error) {
	students, err := h.catalogStore.ListStudents(ctx)
	if err != nil {
		return StudentRoster{}, err
	}

	return StudentRoster{
		Students: students,
		Count:    len(students),
	}, nil
}
