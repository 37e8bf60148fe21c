package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/command/addbook"
	"github.com/campuslib/library-circulation-go/features/command/importbooks"
	"github.com/campuslib/library-circulation-go/features/command/registeraccount"
	"github.com/campuslib/library-circulation-go/features/command/removebook"
	"github.com/campuslib/library-circulation-go/metadata"
)

func newInitSchemaCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "init-schema",
		Short: "Create the circulation tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			if err := store.CreateSchema(cmd.Context()); err != nil {
				return err
			}

			cmd.Println("Schema ready.")

			return nil
		},
	}
}

func newRegisterCommand(env *environment) *cobra.Command {
	var profile registeraccount.Profile
	var domain string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Register an account; the role follows the email's subdomain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := registeraccount.NewCommandHandler(store, registeraccount.WithInstitutionDomain(domain))

			account, err := handler.Handle(cmd.Context(), registeraccount.BuildCommand(args[0], password, profile, time.Now()))
			if err != nil {
				return err
			}

			cmd.Printf("Registered %s %s (%s)\n", account.Role, account.Email, account.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&profile.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&profile.MiddleInitial, "middle-initial", "", "middle initial")
	cmd.Flags().StringVar(&profile.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&profile.Sex, "sex", "", "sex")
	cmd.Flags().StringVar(&profile.ClassYear, "class-year", core.ClassFreshman, "class standing (FR, SO, JR, SR), students only")
	cmd.Flags().Int64Var(&profile.StudentNumber, "student-number", 0, "student number, students only")
	cmd.Flags().Int64Var(&profile.StaffNumber, "staff-number", 0, "staff number, librarians only")
	cmd.Flags().StringVar(&domain, "domain", core.DefaultInstitutionDomain, "institution domain for role resolution")

	return cmd
}

func newAddBookCommand(env *environment) *cobra.Command {
	var title, author, publisher, language string
	var year, quantity int

	cmd := &cobra.Command{
		Use:   "add-book <isbn>",
		Short: "Add a catalog record, cross-validated against the metadata source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := addbook.NewCommandHandler(store, metadata.NewValidator(env.lookup()))

			command := addbook.BuildCommand(args[0], title, author, publisher, year, language, quantity, time.Now())

			book, err := handler.Handle(cmd.Context(), command)
			if err != nil {
				return err
			}

			cmd.Printf("Added %q (%s), %d copies\n", book.Title, book.ISBN, book.Quantity)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "comma-separated authors")
	cmd.Flags().StringVar(&publisher, "publisher", "", "publisher")
	cmd.Flags().IntVar(&year, "year", 0, "publication year")
	cmd.Flags().StringVar(&language, "language", "en", "two-letter language code")
	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "number of copies")

	return cmd
}

func newRemoveBookCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-book <isbn>",
		Short: "Remove a catalog record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := removebook.NewCommandHandler(store)

			if err := handler.Handle(cmd.Context(), removebook.BuildCommand(args[0], time.Now())); err != nil {
				return err
			}

			cmd.Println("Removed.")

			return nil
		},
	}
}

func newImportCommand(env *environment) *cobra.Command {
	var file string
	var quantity int

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import catalog records from a newline-delimited ISBN file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := os.Open(file)
			if err != nil {
				return err
			}
			defer source.Close()

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := importbooks.NewCommandHandler(store, env.lookup(), importbooks.WithLogger(env.logger()))

			report, err := handler.Handle(cmd.Context(), importbooks.BuildCommand(source, quantity, time.Now()))
			if err != nil {
				return err
			}

			cmd.Printf(
				"Imported %d, skipped %d, invalid %d, missing %d\n",
				report.Imported, report.Skipped, report.Invalid, report.Missing,
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the ISBN list")
	cmd.Flags().IntVarP(&quantity, "qty", "q", importbooks.DefaultQuantity, "copies per imported record")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	raw, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return string(raw), nil
}
