// Package registeraccount implements the Register Account use case.
//
// Registration is self-service: the role is never chosen by the caller but
// resolved from the email's domain suffix (students.<institution> registers
// a Student, staff.<institution> a Librarian, anything else is rejected).
// The password is bcrypt-hashed before the account is built, and the account
// plus its role profile are persisted in one store transaction so a failure
// leaves no orphaned identity behind.
package registeraccount
