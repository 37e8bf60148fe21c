package updatestudentprofile

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "UpdateStudentProfile"
)

// Command represents the intent to change a student's profile. Only the
// fields set to non-nil are changed; the externally assigned identity fields
// (student number, email) cannot be addressed at all.
type Command struct {
	StudentID     uuid.UUID
	FirstName     *string
	MiddleInitial *string
	LastName      *string
	Sex           *string
	ClassYear     *core.ClassYear
	RequestedAt   core.Timestamp
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with no field changes; callers set the
// fields they want changed.
func BuildCommand(studentID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		StudentID:   studentID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
