package core

import (
	"strings"
)

// Role is the account role assigned at registration.
type Role int

// The two roles known to the system.
const (
	RoleStudent Role = iota + 1
	RoleLibrarian
)

// DefaultInstitutionDomain is the institution whose subdomains are recognized at registration.
const DefaultInstitutionDomain = "kennesaw.edu"

// String returns the role name as persisted and displayed.
func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleLibrarian:
		return "Librarian"
	default:
		return "Unknown"
	}
}

// ParseRole converts a persisted role name back into a Role.
func ParseRole(name string) (Role, bool) {
	switch name {
	case "Student":
		return RoleStudent, true
	case "Librarian":
		return RoleLibrarian, true
	default:
		return 0, false
	}
}

// ResolveRole deterministically assigns a role from the email's domain suffix:
// students.<institution> registers a Student, staff.<institution> registers a
// Librarian, anything else fails with ErrUnrecognizedDomain.
func ResolveRole(email EmailString, institutionDomain string) (Role, error) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return 0, ErrUnrecognizedDomain
	}

	switch strings.ToLower(email[at+1:]) {
	case "students." + institutionDomain:
		return RoleStudent, nil
	case "staff." + institutionDomain:
		return RoleLibrarian, nil
	default:
		return 0, ErrUnrecognizedDomain
	}
}
