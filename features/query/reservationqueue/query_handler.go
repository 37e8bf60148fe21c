package reservationqueue

import (
	"context"

	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStore defines the interface needed by the QueryHandler for catalog store operations.
type CatalogStore interface {
	ListReservations(ctx context.Context, isbn core.ISBNString) ([]core.Reservation, error)
}

// QueryHandler answers a book's reservation queue in promotion order.
type QueryHandler struct {
	catalogStore CatalogStore
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(catalogStore CatalogStore) QueryHandler {
	return QueryHandler{
		catalogStore: catalogStore,
	}
}

// Handle reads the queue for the book addressed by the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ReservationQueue, error) {
	reservations, err := h.catalogStore.ListReservations(ctx, query.ISBN)
	if err != nil {
		return ReservationQueue{}, err
	}

	return ReservationQueue{
		ISBN:         query.ISBN,
		Reservations: reservations,
		Count:        len(reservations),
	}, nil
}
