package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// ISBNString represents a canonicalized book identifier (separators stripped).
type ISBNString = string

// EmailString represents an account email address.
type EmailString = string

// Timestamp represents a point in time as persisted by the catalog store.
type Timestamp = time.Time

// ToTimestamp converts a time to a Timestamp with UTC normalization and microsecond precision.
func ToTimestamp(t time.Time) Timestamp {
	return t.UTC().Truncate(time.Microsecond)
}
