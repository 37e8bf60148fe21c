// Package borrowbook implements the Borrow Book use case.
//
// This feature checks a copy of a book out to a student for the standard
// loan period. It follows the Load-Decide-Apply pattern with proper
// separation between infrastructure concerns (CommandHandler) and pure
// business logic (Decide function).
//
// The business logic enforces two constraints: the student must not already
// hold an open borrow for the book, and at least one copy must be on the
// shelf. The store enforces the same guards transactionally, so the decision
// layer exists for fast rejection and testability, not for correctness.
package borrowbook
