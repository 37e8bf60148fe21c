// Package config provides database connection configuration for the catalog
// store, one constructor per supported adapter (pgxpool, sql.DB, sqlx.DB).
// The DSN comes from the LIBCIRC_POSTGRES_DSN environment variable with a
// local-development default.
package config
