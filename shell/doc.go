// Package shell contains the infrastructure glue around the pure domain:
// retry handling for transactions that lost a concurrency race, and database
// connection configuration under shell/config.
package shell
