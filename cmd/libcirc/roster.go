package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campuslib/library-circulation-go/features/command/updatelibrarianprofile"
	"github.com/campuslib/library-circulation-go/features/command/updatestudentprofile"
	"github.com/campuslib/library-circulation-go/features/query/bookcatalog"
	"github.com/campuslib/library-circulation-go/features/query/studentroster"
)

func newBooksCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result, err := bookcatalog.NewQueryHandler(store).Handle(cmd.Context())
			if err != nil {
				return err
			}

			for _, book := range result.Books {
				state := ""
				if book.IsBorrowed {
					state = "  [borrowed]"
				}

				cmd.Printf("%s  %q by %s, %d on shelf%s\n", book.ISBN, book.Title, book.Author, book.Quantity, state)
			}

			cmd.Printf("%d record(s)\n", result.Count)

			return nil
		},
	}
}

func newStudentsCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List registered students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result, err := studentroster.NewQueryHandler(store).Handle(cmd.Context())
			if err != nil {
				return err
			}

			for _, student := range result.Students {
				cmd.Printf("%s  %s  #%d  %s\n", student.ID, student.FullName(), student.StudentNumber, student.Email)
			}

			cmd.Printf("%d student(s)\n", result.Count)

			return nil
		},
	}
}

func newUpdateStudentCommand(env *environment) *cobra.Command {
	var firstName, middleInitial, lastName, sex, classYear string

	cmd := &cobra.Command{
		Use:   "update-student <student-id>",
		Short: "Change a student's profile; number and email stay fixed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			command := updatestudentprofile.BuildCommand(studentID, time.Now())
			if cmd.Flags().Changed("first-name") {
				command.FirstName = &firstName
			}
			if cmd.Flags().Changed("middle-initial") {
				command.MiddleInitial = &middleInitial
			}
			if cmd.Flags().Changed("last-name") {
				command.LastName = &lastName
			}
			if cmd.Flags().Changed("sex") {
				command.Sex = &sex
			}
			if cmd.Flags().Changed("class-year") {
				command.ClassYear = &classYear
			}

			student, err := updatestudentprofile.NewCommandHandler(store).Handle(cmd.Context(), command)
			if err != nil {
				return err
			}

			cmd.Printf("Updated %s (#%d)\n", student.FullName(), student.StudentNumber)

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&middleInitial, "middle-initial", "", "middle initial")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&sex, "sex", "", "sex")
	cmd.Flags().StringVar(&classYear, "class-year", "", "class standing (FR, SO, JR, SR)")

	return cmd
}

func newUpdateLibrarianCommand(env *environment) *cobra.Command {
	var firstName, middleInitial, lastName, sex string

	cmd := &cobra.Command{
		Use:   "update-librarian <librarian-id>",
		Short: "Change a librarian's profile; number and email stay fixed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			librarianID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			command := updatelibrarianprofile.BuildCommand(librarianID, time.Now())
			if cmd.Flags().Changed("first-name") {
				command.FirstName = &firstName
			}
			if cmd.Flags().Changed("middle-initial") {
				command.MiddleInitial = &middleInitial
			}
			if cmd.Flags().Changed("last-name") {
				command.LastName = &lastName
			}
			if cmd.Flags().Changed("sex") {
				command.Sex = &sex
			}

			librarian, err := updatelibrarianprofile.NewCommandHandler(store).Handle(cmd.Context(), command)
			if err != nil {
				return err
			}

			cmd.Printf("Updated %s (#%d)\n", librarian.FullName(), librarian.StaffNumber)

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&middleInitial, "middle-initial", "", "middle initial")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&sex, "sex", "", "sex")

	return cmd
}
