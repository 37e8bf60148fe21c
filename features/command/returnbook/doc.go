// Package returnbook implements the Return Book use case.
//
// This feature closes a student's open borrow, restocks the copy, and clears
// the book's borrow state including the borrower pointer. When a reservation
// queue exists for the book, the earliest reservation is promoted inside the
// same store transaction: the returned copy goes straight to the student at
// the head of the queue and the consumed reservation is deleted. A promotion
// failure rolls back the whole return.
package returnbook
