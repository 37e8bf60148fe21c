package reservebook

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
	ReserveBook(ctx context.Context, reservation core.Reservation) (bool, error)
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

// Handle executes the complete command processing workflow. The returned
// flag reports whether a new reservation was created; false means the
// student was already queued.
func (h CommandHandler) Handle(ctx context.Context, command Command) (bool, error) {
	var created bool

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		created, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)
	if err != nil {
		return false, err
	}

	return created, nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (bool, error) {
	snapshot, err := h.catalogStore.LoadCirculation(ctx, command.ISBN, command.StudentID)
	if err != nil {
		return false, err
	}

	result := Decide(snapshot, command)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.ShouldApply() {
		return false, nil // idempotent - the student keeps the original queue position
	}

	reservation := core.BuildReservation(command.StudentID, command.ISBN, command.RequestedAt)

	return h.catalogStore.ReserveBook(ctx, reservation)
}
