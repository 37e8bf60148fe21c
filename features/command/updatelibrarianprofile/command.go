package updatelibrarianprofile

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "UpdateLibrarianProfile"
)

// Command represents the intent to change a librarian's profile. Only the
// fields set to non-nil are changed; the externally assigned identity fields
// (staff number, email) cannot be addressed at all.
type Command struct {
	LibrarianID   uuid.UUID
	FirstName     *string
	MiddleInitial *string
	LastName      *string
	Sex           *string
	RequestedAt   core.Timestamp
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with no field changes; callers set the
// fields they want changed.
func BuildCommand(librarianID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		LibrarianID: librarianID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
