package registeraccount

import (
	"time"

	"github.com/campuslib/library-circulation-go/core"
)

const (
	commandType = "RegisterAccount"
)

// Command represents the intent to register a new account with its profile.
// The role is not part of the command; it is resolved from the email's
// domain suffix. Profile holds both student and librarian fields, and the
// handler persists only the ones matching the resolved role.
type Command struct {
	Email       core.EmailString
	Password    string
	Profile     Profile
	RequestedAt core.Timestamp
}

// Profile carries the person data captured at registration.
type Profile struct {
	FirstName     string
	MiddleInitial string
	LastName      string
	Sex           string
	ClassYear     core.ClassYear // students only
	StudentNumber int64          // students only
	StaffNumber   int64          // librarians only
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(email core.EmailString, password string, profile Profile, requestedAt time.Time) Command {
	return Command{
		Email:       email,
		Password:    password,
		Profile:     profile,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
