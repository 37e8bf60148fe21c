package borrowbook

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
	BorrowBook(ctx context.Context, isbn core.ISBNString, studentID uuid.UUID, now core.Timestamp) (
		core.Borrow,
		error,
	)
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core workflow: Load -> Decide -> Apply.
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

// Handle executes the complete command processing workflow and returns the
// borrow that was created.
//
// Resilience: concurrency conflicts on the guarded quantity decrement are
// retried with exponential backoff.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Borrow, error) {
	var borrow core.Borrow

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		borrow, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)
	if err != nil {
		return core.Borrow{}, err
	}

	return borrow, nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (core.Borrow, error) {
	snapshot, err := h.catalogStore.LoadCirculation(ctx, command.ISBN, command.StudentID)
	if err != nil {
		return core.Borrow{}, err
	}

	result := Decide(snapshot, command)

	if decideErr := result.HasError(); decideErr != nil {
		return core.Borrow{}, decideErr
	}

	return h.catalogStore.BorrowBook(ctx, command.ISBN, command.StudentID, command.RequestedAt)
}
