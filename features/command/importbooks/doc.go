// Package importbooks implements the Import Books use case.
//
// An import streams newline-delimited ISBNs, resolves each one against the
// metadata lookup, and inserts the records that are new. Lines that fail
// checksum validation, already exist in the catalog, or are unknown to the
// lookup source are counted and skipped rather than failing the run, so a
// partially-bad input file still imports everything it can and re-running
// the same file is harmless.
package importbooks
