package core

import (
	"github.com/google/uuid"
)

// ClassYear is a student's class standing.
type ClassYear = string

// Class standing choices.
const (
	ClassFreshman  ClassYear = "FR"
	ClassSophomore ClassYear = "SO"
	ClassJunior    ClassYear = "JR"
	ClassSenior    ClassYear = "SR"
)

// Student is the profile owned one-to-one by an account with RoleStudent.
// StudentNumber and Email are externally assigned identity fields and are not
// re-editable after creation (profile updates exclude them).
type Student struct {
	ID            uuid.UUID // same as the owning account's ID
	FirstName     string
	MiddleInitial string
	LastName      string
	Sex           string
	ClassYear     ClassYear
	StudentNumber int64
	Email         EmailString
}

// BuildStudent creates a student profile owned by the given account.
func BuildStudent(accountID uuid.UUID, firstName, middleInitial, lastName, sex string, classYear ClassYear, studentNumber int64, email EmailString) Student {
	return Student{
		ID:            accountID,
		FirstName:     firstName,
		MiddleInitial: middleInitial,
		LastName:      lastName,
		Sex:           sex,
		ClassYear:     classYear,
		StudentNumber: studentNumber,
		Email:         email,
	}
}

// FullName renders the display name for listings.
func (s Student) FullName() string {
	if s.MiddleInitial == "" {
		return s.FirstName + " " + s.LastName
	}

	return s.FirstName + " " + s.MiddleInitial + ". " + s.LastName
}
