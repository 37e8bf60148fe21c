package importbooks

import (
	"io"
	"time"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "ImportBooks"

	// DefaultQuantity is the shelf count given to every imported record
	// unless the command overrides it.
	DefaultQuantity = 5

	// defaultLanguage is assumed for imported records; the lookup source
	// does not reliably report one.
	defaultLanguage core.LanguageCode = "en"
)

// Command represents the intent to bulk-import catalog records from a
// newline-delimited list of ISBNs.
type Command struct {
	Source      io.Reader
	Quantity    int
	RequestedAt core.Timestamp
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. A quantity below one falls back to
// DefaultQuantity.
func BuildCommand(source io.Reader, quantity int, requestedAt time.Time) Command {
	if quantity < 1 {
		quantity = DefaultQuantity
	}

	return Command{
		Source:      source,
		Quantity:    quantity,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
