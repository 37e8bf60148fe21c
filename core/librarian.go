package core

import (
	"github.com/google/uuid"
)

// Librarian is the profile owned one-to-one by an account with RoleLibrarian.
// StaffNumber and Email are externally assigned identity fields and are not
// re-editable after creation.
type Librarian struct {
	ID            uuid.UUID // same as the owning account's ID
	FirstName     string
	MiddleInitial string
	LastName      string
	Sex           string
	StaffNumber   int64
	Email         EmailString
}

// BuildLibrarian creates a librarian profile owned by the given account.
func BuildLibrarian(accountID uuid.UUID, firstName, middleInitial, lastName, sex string, staffNumber int64, email EmailString) Librarian {
	return Librarian{
		ID:            accountID,
		FirstName:     firstName,
		MiddleInitial: middleInitial,
		LastName:      lastName,
		Sex:           sex,
		StaffNumber:   staffNumber,
		Email:         email,
	}
}

// FullName renders the display name for listings.
func (l Librarian) FullName() string {
	if l.MiddleInitial == "" {
		return l.FirstName + " " + l.LastName
	}

	return l.FirstName + " " + l.MiddleInitial + ". " + l.LastName
}
