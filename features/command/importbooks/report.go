package importbooks

import (
	"github.com/campuslib/library-circulation-go/core"
)

// LineOutcome classifies what happened to one input line.
type LineOutcome string

// The possible per-line outcomes of an import run.
const (
	OutcomeImported LineOutcome = "imported"
	OutcomeSkipped  LineOutcome = "skipped" // record already in the catalog
	OutcomeInvalid  LineOutcome = "invalid" // identifier failed checksum validation
	OutcomeMissing  LineOutcome = "missing" // identifier unknown to the lookup source
)

// LineResult records the outcome for one identifier in the input.
type LineResult struct {
	Line    int // 1-based input line number
	ISBN    core.ISBNString
	Outcome LineOutcome
	Title   string // set for imported records
}

// Report summarizes an import run. Lines holds one entry per non-blank
// input line in input order.
type Report struct {
	Imported int
	Skipped  int
	Invalid  int
	Missing  int
	Lines    []LineResult
}

// record appends a line result and bumps the matching counter.
func (r *Report) record(result LineResult) {
	r.Lines = append(r.Lines, result)

	switch result.Outcome {
	case OutcomeImported:
		r.Imported++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeInvalid:
		r.Invalid++
	case OutcomeMissing:
		r.Missing++
	}
}
