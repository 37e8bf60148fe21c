// Package studentloans implements the Student Loans query.
//
// It lists a student's borrows, newest first, with the late fee computed per
// loan: closed loans are charged against their return time, open loans
// against the query's explicit reference time.
package studentloans
