package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campuslib/library-circulation-go/features/command/borrowbook"
	"github.com/campuslib/library-circulation-go/features/command/reservebook"
	"github.com/campuslib/library-circulation-go/features/command/returnbook"
	"github.com/campuslib/library-circulation-go/features/query/borrowedbooks"
	"github.com/campuslib/library-circulation-go/features/query/reservationqueue"
	"github.com/campuslib/library-circulation-go/features/query/studentloans"
)

func newBorrowCommand(env *environment) *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "borrow <isbn>",
		Short: "Check a copy out to a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := uuid.Parse(student)
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := borrowbook.NewCommandHandler(store)

			borrow, err := handler.Handle(cmd.Context(), borrowbook.BuildCommand(args[0], studentID, time.Now()))
			if err != nil {
				return err
			}

			cmd.Printf("Borrowed %s, due %s\n", borrow.ISBN, borrow.DueAt.Format("2006-01-02"))

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student account id")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newReturnCommand(env *environment) *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "return <isbn>",
		Short: "Return a borrowed copy, promoting the earliest reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := uuid.Parse(student)
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := returnbook.NewCommandHandler(store)

			promoted, err := handler.Handle(cmd.Context(), returnbook.BuildCommand(args[0], studentID, time.Now()))
			if err != nil {
				return err
			}

			cmd.Println("Returned.")

			if promoted != nil {
				cmd.Printf("Copy promoted to queued student %s, due %s\n", promoted.StudentID, promoted.DueAt.Format("2006-01-02"))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student account id")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newReserveCommand(env *environment) *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "reserve <isbn>",
		Short: "Queue a student for a book with no copies on the shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := uuid.Parse(student)
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			handler := reservebook.NewCommandHandler(store)

			created, err := handler.Handle(cmd.Context(), reservebook.BuildCommand(args[0], studentID, time.Now()))
			if err != nil {
				return err
			}

			if created {
				cmd.Println("Reserved.")
			} else {
				cmd.Println("Already queued, original position kept.")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student account id")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newBorrowedCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "borrowed",
		Short: "List catalog records currently checked out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result, err := borrowedbooks.NewQueryHandler(store).Handle(cmd.Context())
			if err != nil {
				return err
			}

			for _, book := range result.Books {
				due := ""
				if book.DueAt != nil {
					due = ", due " + book.DueAt.Format("2006-01-02")
				}

				cmd.Printf("%s  %q by %s%s\n", book.ISBN, book.Title, book.Author, due)
			}

			cmd.Printf("%d record(s)\n", result.Count)

			return nil
		},
	}
}

func newLoansCommand(env *environment) *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Show a student's loans with late fees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			studentID, err := uuid.Parse(student)
			if err != nil {
				return err
			}

			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result, err := studentloans.NewQueryHandler(store).Handle(cmd.Context(), studentloans.BuildQuery(studentID, time.Now()))
			if err != nil {
				return err
			}

			for _, loan := range result.Loans {
				state := "returned"
				if loan.Open {
					state = "open, due " + loan.Borrow.DueAt.Format("2006-01-02")
				}

				cmd.Printf("%s  borrowed %s  (%s)  fee %d\n",
					loan.Borrow.ISBN, loan.Borrow.BorrowedAt.Format("2006-01-02"), state, loan.LateFee)
			}

			cmd.Printf("%d loan(s), total fees %d\n", result.Count, result.TotalFees)

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student account id")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newQueueCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "queue <isbn>",
		Short: "Show a book's reservation queue in promotion order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.catalogStore(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result, err := reservationqueue.NewQueryHandler(store).Handle(cmd.Context(), reservationqueue.BuildQuery(args[0]))
			if err != nil {
				return err
			}

			for i, reservation := range result.Reservations {
				cmd.Printf("%d. %s (reserved %s)\n", i+1, reservation.StudentID, reservation.ReservedAt.Format("2006-01-02 15:04"))
			}

			cmd.Printf("%d queued\n", result.Count)

			return nil
		},
	}
}
