package removebook

import (
	"context"

	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
type CatalogStore interface {
	GetBook(ctx context.Context, isbn core.ISBNString) (core.Book, error)
	DeleteBook(ctx context.Context, isbn core.ISBNString) error
}

// CommandHandler orchestrates removing a catalog record.
type CommandHandler struct {
	catalogStore CatalogStore
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(catalogStore CatalogStore) CommandHandler {
	return CommandHandler{
		catalogStore: catalogStore,
	}
}

// Handle removes the record addressed by the command's canonical identifier.
//
// Fails with core.ErrBookNotFound when no such record exists and with
// core.ErrAlreadyBorrowed while any copy is checked out, so open borrows
// never end up pointing at a deleted record.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	book, err := h.catalogStore.GetBook(ctx, command.ISBN)
	if err != nil {
		return err
	}

	if book.IsBorrowed {
		return core.ErrAlreadyBorrowed
	}

	return h.catalogStore.DeleteBook(ctx, command.ISBN)
}
