package core

import (
	"time"

	"github.com/google/uuid"
)

// Reservation queues a student for a book that had no copies available.
// One reservation per (student, book) pair; the queue for a book is ordered
// by ReservedAt ascending (FIFO). A reservation is consumed when a returned
// copy is promoted to the student at the head of the queue.
type Reservation struct {
	StudentID  uuid.UUID
	ISBN       ISBNString
	ReservedAt Timestamp
}

// BuildReservation creates a reservation stamped with the given time.
func BuildReservation(studentID uuid.UUID, isbn ISBNString, reservedAt time.Time) Reservation {
	return Reservation{
		StudentID:  studentID,
		ISBN:       isbn,
		ReservedAt: ToTimestamp(reservedAt),
	}
}
