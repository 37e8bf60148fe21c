// Package postgreswrapper abstracts over the three database adapters for
// catalog store integration tests. The ADAPTER_TYPE environment variable
// selects which adapter a test run exercises (pgx.pool, sql.db, sqlx.db);
// pgx.pool is the default.
package postgreswrapper
