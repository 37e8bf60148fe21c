// Package testutil provides hand-written test doubles for the feature slices:
// an in-memory catalog store with the same semantics as the PostgreSQL engine,
// and a canned metadata lookup stub.
package testutil
