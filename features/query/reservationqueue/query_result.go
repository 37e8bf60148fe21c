package reservationqueue

import (
	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

// ReservationQueue represents the query result: a book's reservations in
// promotion order (earliest reservation first).
type ReservationQueue struct {
	ISBN         core.ISBNString
	Reservations []core.Reservation
	Count        int
}

// Position returns the student's 1-based place in the queue, or 0 when the
// student is not queued.
func (q ReservationQueue) Position(studentID uuid.UUID) int {
	for i, reservation := range q.Reservations {
		if reservation.StudentID == studentID {
			return i + 1
		}
	}

	return 0
}
