// Package postgresengine provides the PostgreSQL implementation of the catalog store.
//
// This package persists the relational tables of the circulation system
// (books, accounts, students, librarians, borrows, reservations), supporting
// multiple database adapters (pgx, sql.DB, sqlx) with transactional circulation
// operations and oversell protection.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - Atomic borrow/return/promotion with a compare-and-swap quantity guard
//   - Typed domain errors mapped from SQL states (unique violations, conflicts)
//   - Configurable table prefix and logging
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewCatalogStoreFromPGXPool(db)
//
//	// With a table prefix and logging
//	store, _ := postgresengine.NewCatalogStoreFromPGXPool(
//		db,
//		postgresengine.WithTablePrefix("library_"),
//		postgresengine.WithLogger(logger),
//	)
//
//	borrow, _ := store.BorrowBook(ctx, isbn, studentID, time.Now())
package postgresengine
