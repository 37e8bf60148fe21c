// Package core contains the pure domain model of the library circulation
// system: catalog and identity records, the circulation rules shared by the
// feature slices, ISBN handling, role resolution, and late-fee computation.
//
// Nothing in this package performs I/O or knows about the catalog store.
// Feature packages load state through the store, call into the pure functions
// here to make decisions, and apply the outcome back through the store.
package core
