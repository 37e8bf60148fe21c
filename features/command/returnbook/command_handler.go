package returnbook

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/shell"
)

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
type CatalogStore interface {
	LoadCirculation(ctx context.Context, isbn core.ISBNString, studentID uuid.UUID) (
		catalogstore.CirculationSnapshot,
		error,
	)
	ReturnBook(ctx context.Context, isbn core.ISBNString, studentID uuid.UUID, now core.Timestamp) (
		*core.Borrow,
		error,
	)
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
type CommandHandler struct {
	catalogStore CatalogStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(catalogStore CatalogStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		catalogStore: catalogStore,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow. When the return
// promoted a queued reservation, the promoted borrow is returned so the
// caller can surface who received the copy; otherwise it is nil.
func (h CommandHandler) Handle(ctx context.Context, command Command) (*core.Borrow, error) {
	var promoted *core.Borrow

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		promoted, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)
	if err != nil {
		return nil, err
	}

	return promoted, nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (*core.Borrow, error) {
	snapshot, err := h.catalogStore.LoadCirculation(ctx, command.ISBN, command.StudentID)
	if err != nil {
		return nil, err
	}

	result := Decide(snapshot, command)

	if decideErr := result.HasError(); decideErr != nil {
		return nil, decideErr
	}

	return h.catalogStore.ReturnBook(ctx, command.ISBN, command.StudentID, command.RequestedAt)
}
