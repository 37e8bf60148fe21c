package postgresengine

import (
	"context"
	"fmt"
)

// CreateSchema creates the six catalog tables and their indexes if they do
// not exist yet. Identifier columns hold uuid strings as text so all three
// database adapters scan them identically.
func (cs CatalogStore) CreateSchema(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id            text PRIMARY KEY,
			email         text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			role          text NOT NULL,
			created_at    timestamptz NOT NULL
		)`, cs.table(tableAccounts)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id             text PRIMARY KEY REFERENCES %s (id) ON DELETE CASCADE,
			first_name     text NOT NULL,
			middle_initial text NOT NULL DEFAULT '',
			last_name      text NOT NULL,
			sex            text NOT NULL DEFAULT '',
			class_year     text NOT NULL DEFAULT '',
			student_number bigint NOT NULL UNIQUE,
			email          text NOT NULL UNIQUE
		)`, cs.table(tableStudents), cs.table(tableAccounts)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id             text PRIMARY KEY REFERENCES %s (id) ON DELETE CASCADE,
			first_name     text NOT NULL,
			middle_initial text NOT NULL DEFAULT '',
			last_name      text NOT NULL,
			sex            text NOT NULL DEFAULT '',
			staff_number   bigint NOT NULL UNIQUE,
			email          text NOT NULL UNIQUE
		)`, cs.table(tableLibrarians), cs.table(tableAccounts)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			isbn           text PRIMARY KEY,
			title          text NOT NULL,
			author         text NOT NULL DEFAULT '',
			publisher      text NOT NULL DEFAULT '',
			year           integer NOT NULL,
			language       text NOT NULL DEFAULT 'en',
			quantity       integer NOT NULL CHECK (quantity >= 0),
			is_borrowed    boolean NOT NULL DEFAULT false,
			borrowed_by    text NULL REFERENCES %s (id) ON DELETE SET NULL,
			borrowed_at    timestamptz NULL,
			to_be_returned timestamptz NULL,
			returned_at    timestamptz NULL
		)`, cs.table(tableBooks), cs.table(tableStudents)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id          text PRIMARY KEY,
			student_id  text NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
			isbn        text NOT NULL REFERENCES %s (isbn) ON DELETE CASCADE,
			borrowed_at timestamptz NOT NULL,
			due_at      timestamptz NOT NULL,
			returned_at timestamptz NULL,
			UNIQUE (student_id, isbn, borrowed_at)
		)`, cs.table(tableBorrows), cs.table(tableStudents), cs.table(tableBooks)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_open_idx ON %s (isbn) WHERE returned_at IS NULL`,
			cs.table(tableBorrows), cs.table(tableBorrows)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			student_id  text NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
			isbn        text NOT NULL REFERENCES %s (isbn) ON DELETE CASCADE,
			reserved_at timestamptz NOT NULL,
			PRIMARY KEY (student_id, isbn)
		)`, cs.table(tableReservations), cs.table(tableStudents), cs.table(tableBooks)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_fifo_idx ON %s (isbn, reserved_at)`,
			cs.table(tableReservations), cs.table(tableReservations)),
	}

	for _, statement := range statements {
		if _, _, err := cs.executeStatement(ctx, cs.db, statement); err != nil {
			return err
		}
	}

	return nil
}
