package importbooks

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/metadata"
)

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
type CatalogStore interface {
	HasBook(ctx context.Context, isbn core.ISBNString) (bool, error)
	InsertBook(ctx context.Context, book core.Book) error
}

// Logger matches the nil-safe structured logging interface used across the module.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// CommandHandler orchestrates a bulk import: it streams identifiers from the
// command's source, resolves each against the metadata lookup, and inserts
// the records that are new and resolvable.
type CommandHandler struct {
	catalogStore CatalogStore
	lookup       metadata.Lookup
	logger       Logger
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithLogger sets a logger for per-line warnings. Without one the handler is silent.
func WithLogger(logger Logger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(catalogStore CatalogStore, lookup metadata.Lookup, opts ...Option) CommandHandler {
	handler := CommandHandler{
		catalogStore: catalogStore,
		lookup:       lookup,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the import and returns a per-line report.
//
// The run is resilient per line: invalid identifiers, identifiers already in
// the catalog, and identifiers unknown to the lookup source are counted and
// skipped without failing the run. Infrastructure errors (source read,
// store, lookup transport) abort the run with the partial report.
//
// Re-running an import is idempotent: every record imported by a previous
// run is reported as skipped.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Report, error) {
	var report Report

	scanner := bufio.NewScanner(command.Source)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		result, err := h.importLine(ctx, lineNo, raw, command.Quantity, command.RequestedAt)
		if err != nil {
			return report, err
		}

		report.record(result)
	}

	if err := scanner.Err(); err != nil {
		return report, err
	}

	return report, nil
}

// importLine processes a single identifier and classifies the outcome.
func (h CommandHandler) importLine(
	ctx context.Context,
	lineNo int,
	raw string,
	quantity int,
	requestedAt core.Timestamp,
) (LineResult, error) {

	isbn := core.CanonicalizeISBN(raw)
	result := LineResult{Line: lineNo, ISBN: isbn}

	if err := core.ValidateISBN(isbn); err != nil {
		h.logWarn("skipping invalid identifier", "line", lineNo, "isbn", isbn)
		result.Outcome = OutcomeInvalid

		return result, nil
	}

	exists, err := h.catalogStore.HasBook(ctx, isbn)
	if err != nil {
		return result, err
	}
	if exists {
		result.Outcome = OutcomeSkipped

		return result, nil
	}

	meta, err := h.lookup.Lookup(ctx, isbn)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			h.logWarn("identifier unknown to metadata source", "line", lineNo, "isbn", isbn)
			result.Outcome = OutcomeMissing

			return result, nil
		}

		return result, err
	}

	book := core.BuildBook(
		isbn,
		meta.Title,
		strings.Join(meta.Authors, ", "),
		meta.Publisher,
		meta.Year,
		defaultLanguage,
		quantity,
	)

	if err := h.catalogStore.InsertBook(ctx, book); err != nil {
		if errors.Is(err, core.ErrDuplicateIdentifier) {
			// racing import won the insert, treat it as already present
			result.Outcome = OutcomeSkipped

			return result, nil
		}

		return result, err
	}

	result.Outcome = OutcomeImported
	result.Title = meta.Title

	return result, nil
}

func (h CommandHandler) logWarn(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Warn(msg, args...)
	}
}
