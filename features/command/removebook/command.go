package removebook

import (
	"time"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent of a librarian to remove a catalog record.
type Command struct {
	ISBN        core.ISBNString
	RequestedAt core.Timestamp
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with a canonicalized identifier.
func BuildCommand(isbn string, requestedAt time.Time) Command {
	return Command{
		ISBN:        core.CanonicalizeISBN(isbn),
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
