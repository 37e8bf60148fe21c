package reservebook

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "ReserveBook"
)

// Command represents the intent of a student to queue for a book with no
// available copies.
type Command struct {
	ISBN        core.ISBNString
	StudentID   uuid.UUID
	RequestedAt core.Timestamp
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with a canonicalized identifier.
func BuildCommand(isbn string, studentID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		ISBN:        core.CanonicalizeISBN(isbn),
		StudentID:   studentID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
