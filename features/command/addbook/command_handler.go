package addbook

import (
	"context"
	"time"

	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
type CatalogStore interface {
	InsertBook(ctx context.Context, book core.Book) error
}

// MetadataValidator cross-validates a record against an external
// bibliographic source before it enters the catalog.
type MetadataValidator interface {
	Validate(ctx context.Context, book core.Book, asOf time.Time) error
}

// CommandHandler orchestrates adding a catalog record: local field checks,
// metadata cross-validation, and insertion.
type CommandHandler struct {
	catalogStore CatalogStore
	validator    MetadataValidator
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(catalogStore CatalogStore, validator MetadataValidator) CommandHandler {
	return CommandHandler{
		catalogStore: catalogStore,
		validator:    validator,
	}
}

// Handle executes the add workflow and returns the stored record.
//
// Fails with core.ErrInvalidIdentifier on a checksum failure,
// core.ErrMetadataMismatch (wrapped with the offending field) when the record
// contradicts the lookup, metadata.ErrNotFound when the identifier is unknown
// to the source, and core.ErrDuplicateIdentifier when the ISBN already exists.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Book, error) {
	if err := validateRecord(command.Book); err != nil {
		return core.Book{}, err
	}

	if err := h.validator.Validate(ctx, command.Book, command.RequestedAt); err != nil {
		return core.Book{}, err
	}

	if err := h.catalogStore.InsertBook(ctx, command.Book); err != nil {
		return core.Book{}, err
	}

	return command.Book, nil
}
