package updatelibrarianprofile

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
type CatalogStore interface {
	GetLibrarian(ctx context.Context, librarianID uuid.UUID) (core.Librarian, error)
	UpdateLibrarianProfile(ctx context.Context, librarian core.Librarian) error
}

// CommandHandler orchestrates changing a librarian's profile.
type CommandHandler struct {
	catalogStore CatalogStore
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(catalogStore CatalogStore) CommandHandler {
	return CommandHandler{
		catalogStore: catalogStore,
	}
}

// Handle loads the current profile, overlays the changed fields, and persists
// the result. The staff number and email always survive unchanged.
//
// Fails with core.ErrLibrarianNotFound when no profile exists for the ID.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Librarian, error) {
	librarian, err := h.catalogStore.GetLibrarian(ctx, command.LibrarianID)
	if err != nil {
		return core.Librarian{}, err
	}

	if command.FirstName != nil {
		librarian.FirstName = *command.FirstName
	}
	if command.MiddleInitial != nil {
		librarian.MiddleInitial = *command.MiddleInitial
	}
	if command.LastName != nil {
		librarian.LastName = *command.LastName
	}
	if command.Sex != nil {
		librarian.Sex = *command.Sex
	}

	if err := h.catalogStore.UpdateLibrarianProfile(ctx, librarian); err != nil {
		return core.Librarian{}, err
	}

	return librarian, nil
}
