// Package studentroster implements the Student Roster query.
//
// It lists all registered student profiles for the librarian, ordered by
// last then first name.
package studentroster
