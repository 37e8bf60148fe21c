// Command libcirc is the circulation desk CLI: catalog management,
// registration, and circulation against the PostgreSQL-backed store.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine"
	"github.com/campuslib/library-circulation-go/metadata"
	"github.com/campuslib/library-circulation-go/shell/config"
)

func main() {
	root := newRootCommand()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "libcirc",
		Short:         "University library catalog and circulation manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	env := &environment{verbose: &verbose}

	root.AddCommand(
		newInitSchemaCommand(env),
		newRegisterCommand(env),
		newAddBookCommand(env),
		newRemoveBookCommand(env),
		newImportCommand(env),
		newBooksCommand(env),
		newStudentsCommand(env),
		newUpdateStudentCommand(env),
		newUpdateLibrarianCommand(env),
		newBorrowCommand(env),
		newReturnCommand(env),
		newReserveCommand(env),
		newBorrowedCommand(env),
		newLoansCommand(env),
		newQueueCommand(env),
	)

	return root
}

// environment lazily connects to the database so commands that fail flag
// parsing never open a pool.
type environment struct {
	verbose *bool
	pool    *pgxpool.Pool
}

func (e *environment) logger() *slog.Logger {
	level := slog.LevelInfo
	if e.verbose != nil && *e.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (e *environment) catalogStore(cmd *cobra.Command) (postgresengine.CatalogStore, error) {
	pool, err := pgxpool.NewWithConfig(cmd.Context(), config.PostgresPGXPoolConfig())
	if err != nil {
		return postgresengine.CatalogStore{}, fmt.Errorf("connecting to database: %w", err)
	}

	e.pool = pool

	return postgresengine.NewCatalogStoreFromPGXPool(pool, postgresengine.WithLogger(e.logger()))
}

func (e *environment) lookup() metadata.Lookup {
	return metadata.NewGoogleBooksClient()
}

func (e *environment) close() {
	if e.pool != nil {
		e.pool.Close()
	}
}
