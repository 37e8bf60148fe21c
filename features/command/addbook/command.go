package addbook

import (
	"time"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent of a librarian to add a catalog record.
type Command struct {
	Book        core.Book
	RequestedAt core.Timestamp
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. BuildBook canonicalizes the identifier,
// so hyphenated and bare forms of the same ISBN collide on the unique key.
func BuildCommand(isbn string, title, author, publisher string, year int, language core.LanguageCode, quantity int, requestedAt time.Time) Command {
	return Command{
		Book:        core.BuildBook(isbn, title, author, publisher, year, language, quantity),
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
