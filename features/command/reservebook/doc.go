// Package reservebook implements the Reserve Book use case.
//
// This feature queues a student for a book that has no copies on the shelf.
// The queue is strictly FIFO by reservation time; the earliest reservation
// is promoted automatically when a copy comes back. Reserving is rejected
// while a copy is available and while the student already holds one, and a
// repeated reservation is a no-op that keeps the original queue position.
package reservebook
