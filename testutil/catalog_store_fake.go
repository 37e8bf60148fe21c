package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStoreFake is an in-memory catalog store double mirroring the
// semantics of the PostgreSQL engine, including FIFO reservation promotion on
// return. It is safe for concurrent use.
type CatalogStoreFake struct {
	mu           sync.Mutex
	books        map[core.ISBNString]core.Book
	borrows      []core.Borrow
	reservations []core.Reservation
	accounts     map[core.EmailString]core.Account
	students     map[uuid.UUID]core.Student
	librarians   map[uuid.UUID]core.Librarian
}

// NewCatalogStoreFake creates an empty in-memory catalog store.
func NewCatalogStoreFake() *CatalogStoreFake {
	return &CatalogStoreFake{
		books:      make(map[core.ISBNString]core.Book),
		accounts:   make(map[core.EmailString]core.Account),
		students:   make(map[uuid.UUID]core.Student),
		librarians: make(map[uuid.UUID]core.Librarian),
	}
}

// InsertBook adds a catalog record, rejecting duplicate identifiers.
func (f *CatalogStoreFake) InsertBook(_ context.Context, book core.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.books[book.ISBN]; exists {
		return core.ErrDuplicateIdentifier
	}

	f.books[book.ISBN] = book

	return nil
}

// GetBook fetches a catalog record.
func (f *CatalogStoreFake) GetBook(_ context.Context, isbn core.ISBNString) (core.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	book, exists := f.books[isbn]
	if !exists {
		return core.Book{}, core.ErrBookNotFound
	}

	return book, nil
}

// HasBook reports whether a catalog record exists.
func (f *CatalogStoreFake) HasBook(_ context.Context, isbn core.ISBNString) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, exists := f.books[isbn]

	return exists, nil
}

// DeleteBook removes a catalog record together with its reservation queue.
func (f *CatalogStoreFake) DeleteBook(_ context.Context, isbn core.ISBNString) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.books[isbn]; !exists {
		return core.ErrBookNotFound
	}

	delete(f.books, isbn)

	remaining := f.reservations[:0]
	for _, reservation := range f.reservations {
		if reservation.ISBN != isbn {
			remaining = append(remaining, reservation)
		}
	}
	f.reservations = remaining

	return nil
}

// ListBorrowedBooks returns the catalog records currently flagged as borrowed.
func (f *CatalogStoreFake) ListBorrowedBooks(_ context.Context) ([]core.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	borrowed := make([]core.Book, 0)

	for _, book := range f.books {
		if book.IsBorrowed {
			borrowed = append(borrowed, book)
		}
	}

	sort.Slice(borrowed, func(i, j int) bool { return borrowed[i].Title < borrowed[j].Title })

	return borrowed, nil
}

// ListBooks returns the whole catalog ordered by title.
func (f *CatalogStoreFake) ListBooks(_ context.Context) ([]core.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	books := make([]core.Book, 0, len(f.books))

	for _, book := range f.books {
		books = append(books, book)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })

	return books, nil
}

// LoadCirculation reads the circulation snapshot for a (book, student) pair.
func (f *CatalogStoreFake) LoadCirculation(_ context.Context, isbn core.ISBNString, studentID uuid.UUID) (
	catalogstore.CirculationSnapshot,
	error,
) {

	f.mu.Lock()
	defer f.mu.Unlock()

	book, exists := f.books[isbn]
	if !exists {
		return catalogstore.CirculationSnapshot{}, core.ErrBookNotFound
	}

	return catalogstore.CirculationSnapshot{
		Book:           book,
		OpenBorrow:     f.openBorrowLocked(studentID, isbn),
		HasReservation: f.hasReservationLocked(studentID, isbn),
	}, nil
}

// BorrowBook checks a copy out to a student, mirroring the engine's guards.
func (f *CatalogStoreFake) BorrowBook(_ context.Context, isbn core.ISBNString, studentID uuid.UUID, now time.Time) (
	core.Borrow,
	error,
) {

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.borrowLocked(isbn, studentID, now)
}

// ReturnBook closes the open borrow, restocks the copy, and promotes the
// earliest reservation if one exists.
func (f *CatalogStoreFake) ReturnBook(_ context.Context, isbn core.ISBNString, studentID uuid.UUID, now time.Time) (
	*core.Borrow,
	error,
) {

	f.mu.Lock()
	defer f.mu.Unlock()

	open := f.openBorrowLocked(studentID, isbn)
	if open == nil {
		return nil, core.ErrNoActiveBorrow
	}

	bookBefore := f.books[isbn]
	returnedAt := core.ToTimestamp(now)

	for i := range f.borrows {
		if f.borrows[i].ID == open.ID {
			f.borrows[i].ReturnedAt = &returnedAt
		}
	}

	book := bookBefore
	book.Quantity++
	book.IsBorrowed = false
	book.BorrowedBy = nil
	book.ReturnedAt = &returnedAt
	f.books[isbn] = book

	next := f.earliestReservationLocked(isbn)
	if next == nil {
		return nil, nil
	}

	promoted, promoteErr := f.borrowLocked(isbn, next.StudentID, now)
	if promoteErr != nil {
		// Mirror the transactional engine: a failed promotion undoes the
		// whole return, close and restock included.
		f.books[isbn] = bookBefore

		for i := range f.borrows {
			if f.borrows[i].ID == open.ID {
				f.borrows[i].ReturnedAt = nil
			}
		}

		return nil, errors.Join(catalogstore.ErrReservationPromotionFailed, promoteErr)
	}

	f.deleteReservationLocked(next.StudentID, isbn)

	return &promoted, nil
}

// ReserveBook queues a student with get-or-create semantics.
func (f *CatalogStoreFake) ReserveBook(_ context.Context, reservation core.Reservation) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.hasReservationLocked(reservation.StudentID, reservation.ISBN) {
		return false, nil
	}

	f.reservations = append(f.reservations, reservation)

	return true, nil
}

// ListReservations returns the FIFO queue for a book.
func (f *CatalogStoreFake) ListReservations(_ context.Context, isbn core.ISBNString) ([]core.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := make([]core.Reservation, 0)

	for _, reservation := range f.reservations {
		if reservation.ISBN == isbn {
			queue = append(queue, reservation)
		}
	}

	sort.Slice(queue, func(i, j int) bool { return queue[i].ReservedAt.Before(queue[j].ReservedAt) })

	return queue, nil
}

// ListStudentBorrows returns a student's borrow records, newest first.
func (f *CatalogStoreFake) ListStudentBorrows(_ context.Context, studentID uuid.UUID) ([]core.Borrow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	records := make([]core.Borrow, 0)

	for _, borrow := range f.borrows {
		if borrow.StudentID == studentID {
			records = append(records, borrow)
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].BorrowedAt.After(records[j].BorrowedAt) })

	return records, nil
}

// RegisterStudent persists an account with its student profile.
func (f *CatalogStoreFake) RegisterStudent(_ context.Context, account core.Account, student core.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.accounts[account.Email]; exists {
		return core.ErrDuplicateAccount
	}

	f.accounts[account.Email] = account
	f.students[student.ID] = student

	return nil
}

// RegisterLibrarian persists an account with its librarian profile.
func (f *CatalogStoreFake) RegisterLibrarian(_ context.Context, account core.Account, librarian core.Librarian) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.accounts[account.Email]; exists {
		return core.ErrDuplicateAccount
	}

	f.accounts[account.Email] = account
	f.librarians[librarian.ID] = librarian

	return nil
}

// GetStudent fetches a student profile by its owning account's ID.
func (f *CatalogStoreFake) GetStudent(_ context.Context, studentID uuid.UUID) (core.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	student, exists := f.students[studentID]
	if !exists {
		return core.Student{}, core.ErrStudentNotFound
	}

	return student, nil
}

// ListStudents returns all student profiles ordered by last then first name.
func (f *CatalogStoreFake) ListStudents(_ context.Context) ([]core.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	students := make([]core.Student, 0, len(f.students))

	for _, student := range f.students {
		students = append(students, student)
	}

	sort.Slice(students, func(i, j int) bool {
		if students[i].LastName != students[j].LastName {
			return students[i].LastName < students[j].LastName
		}

		return students[i].FirstName < students[j].FirstName
	})

	return students, nil
}

// GetLibrarian fetches a librarian profile by its owning account's ID.
func (f *CatalogStoreFake) GetLibrarian(_ context.Context, librarianID uuid.UUID) (core.Librarian, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	librarian, exists := f.librarians[librarianID]
	if !exists {
		return core.Librarian{}, core.ErrLibrarianNotFound
	}

	return librarian, nil
}

// UpdateStudentProfile replaces the mutable profile fields, never the
// externally assigned identity fields.
func (f *CatalogStoreFake) UpdateStudentProfile(_ context.Context, student core.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, exists := f.students[student.ID]
	if !exists {
		return core.ErrStudentNotFound
	}

	current.FirstName = student.FirstName
	current.MiddleInitial = student.MiddleInitial
	current.LastName = student.LastName
	current.Sex = student.Sex
	current.ClassYear = student.ClassYear
	f.students[student.ID] = current

	return nil
}

// UpdateLibrarianProfile replaces the mutable profile fields, never the
// externally assigned identity fields.
func (f *CatalogStoreFake) UpdateLibrarianProfile(_ context.Context, librarian core.Librarian) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, exists := f.librarians[librarian.ID]
	if !exists {
		return core.ErrLibrarianNotFound
	}

	current.FirstName = librarian.FirstName
	current.MiddleInitial = librarian.MiddleInitial
	current.LastName = librarian.LastName
	current.Sex = librarian.Sex
	f.librarians[librarian.ID] = current

	return nil
}

// AccountCount reports how many accounts were persisted, for rollback assertions.
func (f *CatalogStoreFake) AccountCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.accounts)
}

// StudentCount reports how many student profiles were persisted.
func (f *CatalogStoreFake) StudentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.students)
}

// LibrarianCount reports how many librarian profiles were persisted.
func (f *CatalogStoreFake) LibrarianCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.librarians)
}

func (f *CatalogStoreFake) borrowLocked(isbn core.ISBNString, studentID uuid.UUID, now time.Time) (core.Borrow, error) {
	if f.openBorrowLocked(studentID, isbn) != nil {
		return core.Borrow{}, core.ErrAlreadyBorrowed
	}

	book, exists := f.books[isbn]
	if !exists {
		return core.Borrow{}, core.ErrBookNotFound
	}

	if book.Quantity == 0 {
		return core.Borrow{}, core.ErrNoCopiesAvailable
	}

	borrow := core.BuildBorrow(studentID, isbn, now)

	book.Quantity--
	book.IsBorrowed = true
	borrower := studentID
	book.BorrowedBy = &borrower
	book.BorrowedAt = &borrow.BorrowedAt
	book.DueAt = &borrow.DueAt
	f.books[isbn] = book

	f.borrows = append(f.borrows, borrow)

	return borrow, nil
}

func (f *CatalogStoreFake) openBorrowLocked(studentID uuid.UUID, isbn core.ISBNString) *core.Borrow {
	for i := range f.borrows {
		borrow := f.borrows[i]
		if borrow.StudentID == studentID && borrow.ISBN == isbn && borrow.IsOpen() {
			return &borrow
		}
	}

	return nil
}

func (f *CatalogStoreFake) hasReservationLocked(studentID uuid.UUID, isbn core.ISBNString) bool {
	for _, reservation := range f.reservations {
		if reservation.StudentID == studentID && reservation.ISBN == isbn {
			return true
		}
	}

	return false
}

func (f *CatalogStoreFake) earliestReservationLocked(isbn core.ISBNString) *core.Reservation {
	var earliest *core.Reservation

	for i := range f.reservations {
		reservation := f.reservations[i]
		if reservation.ISBN != isbn {
			continue
		}

		if earliest == nil || reservation.ReservedAt.Before(earliest.ReservedAt) {
			earliest = &reservation
		}
	}

	return earliest
}

func (f *CatalogStoreFake) deleteReservationLocked(studentID uuid.UUID, isbn core.ISBNString) {
	remaining := f.reservations[:0]

	for _, reservation := range f.reservations {
		if reservation.StudentID == studentID && reservation.ISBN == isbn {
			continue
		}

		remaining = append(remaining, reservation)
	}

	f.reservations = remaining
}
