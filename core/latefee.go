package core

import (
	"time"
)

// LateFeePerDayUnits is the penalty per whole day past the due date, in fee units.
const LateFeePerDayUnits = 1000

// LateFee computes the penalty for this borrow. The reference instant is the
// actual return time for a closed borrow, otherwise the caller-supplied asOf
// instant. Lateness is measured in whole calendar days, time of day is
// discarded. Zero or negative lateness yields a fee of 0.
func (b Borrow) LateFee(asOf time.Time) int64 {
	reference := asOf
	if b.ReturnedAt != nil {
		reference = *b.ReturnedAt
	}

	daysLate := calendarDaysBetween(b.DueAt, reference)
	if daysLate <= 0 {
		return 0
	}

	return int64(daysLate) * LateFeePerDayUnits
}

// calendarDaysBetween subtracts the date components of from and to, ignoring time of day.
func calendarDaysBetween(from time.Time, to time.Time) int {
	fromYear, fromMonth, fromDay := from.UTC().Date()
	toYear, toMonth, toDay := to.UTC().Date()

	fromDate := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)

	return int(toDate.Sub(fromDate) / (24 * time.Hour))
}
