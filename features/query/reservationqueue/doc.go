// Package reservationqueue implements the Reservation Queue query.
//
// It lists a book's reservations in promotion order, which is strictly FIFO
// by reservation time. The result can also answer a student's position in
// the queue.
package reservationqueue
