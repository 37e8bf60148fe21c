package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine/internal/adapters"
	"github.com/campuslib/library-circulation-go/core"
)

const (
	colBorrowID   = "id"
	colStudentID  = "student_id"
	colDueAt      = "due_at"
	colReservedAt = "reserved_at"
)

var borrowColumns = []any{
	colBorrowID, colStudentID, colISBN, colBorrowedAt, colDueAt, colReturnedAt,
}

// LoadCirculation reads the state a circulation decision is made against:
// the book row, the student's open borrow for it (if any), and whether the
// student already sits in the book's reservation queue.
func (cs CatalogStore) LoadCirculation(ctx context.Context, isbn core.ISBNString, studentID uuid.UUID) (
	catalogstore.CirculationSnapshot,
	error,
) {

	var empty catalogstore.CirculationSnapshot

	book, err := cs.getBook(ctx, cs.db, isbn)
	if err != nil {
		return empty, err
	}

	openBorrow, err := cs.findOpenBorrow(ctx, cs.db, studentID, isbn)
	if err != nil {
		return empty, err
	}

	hasReservation, err := cs.hasReservation(ctx, cs.db, studentID, isbn)
	if err != nil {
		return empty, err
	}

	return catalogstore.CirculationSnapshot{
		Book:           book,
		OpenBorrow:     openBorrow,
		HasReservation: hasReservation,
	}, nil
}

// BorrowBook checks a copy out to a student: it decrements the shelf count
// with a quantity > 0 guard, refreshes the denormalized borrow state on the
// book, and creates the open borrow record, all in one transaction.
//
// Fails with core.ErrAlreadyBorrowed when the student already holds an open
// borrow for this book, and with core.ErrNoCopiesAvailable when no copy is
// left, including the case where a racing borrow took the last one.
func (cs CatalogStore) BorrowBook(ctx context.Context, isbn core.ISBNString, studentID uuid.UUID, now time.Time) (
	core.Borrow,
	error,
) {

	var borrow core.Borrow

	err := cs.withTx(ctx, func(tx adapters.DBTx) error {
		var txErr error
		borrow, txErr = cs.borrowInTx(ctx, tx, isbn, studentID, now)

		return txErr
	})
	if err != nil {
		return core.Borrow{}, err
	}

	cs.logOperation(logOpBookBorrowed, logAttrISBN, isbn, logAttrStudentID, studentID.String())

	return borrow, nil
}

// ReturnBook closes the student's open borrow, restores the shelf count, and
// clears the denormalized borrow state on the book. If a reservation queue
// exists for the book, the earliest reservation is promoted in the same
// transaction: the returned copy is immediately borrowed for that student and
// the consumed reservation is deleted. The promoted borrow is returned so the
// caller can surface who received the copy.
//
// A promotion failure rolls back the whole return and is reported wrapped in
// catalogstore.ErrReservationPromotionFailed.
func (cs CatalogStore) ReturnBook(ctx context.Context, isbn core.ISBNString, studentID uuid.UUID, now time.Time) (
	*core.Borrow,
	error,
) {

	var promoted *core.Borrow

	err := cs.withTx(ctx, func(tx adapters.DBTx) error {
		openBorrow, findErr := cs.findOpenBorrow(ctx, tx, studentID, isbn)
		if findErr != nil {
			return findErr
		}
		if openBorrow == nil {
			return core.ErrNoActiveBorrow
		}

		if closeErr := cs.closeBorrow(ctx, tx, openBorrow.ID, now); closeErr != nil {
			return closeErr
		}

		if restockErr := cs.restockBook(ctx, tx, isbn, now); restockErr != nil {
			return restockErr
		}

		next, nextErr := cs.findEarliestReservation(ctx, tx, isbn)
		if nextErr != nil {
			return nextErr
		}
		if next == nil {
			return nil
		}

		promotedBorrow, promoteErr := cs.borrowInTx(ctx, tx, isbn, next.StudentID, now)
		if promoteErr != nil {
			return errors.Join(catalogstore.ErrReservationPromotionFailed, promoteErr)
		}

		if deleteErr := cs.deleteReservationInTx(ctx, tx, next.StudentID, isbn); deleteErr != nil {
			return errors.Join(catalogstore.ErrReservationPromotionFailed, deleteErr)
		}

		promoted = &promotedBorrow

		return nil
	})
	if err != nil {
		return nil, err
	}

	cs.logOperation(logOpBookReturned, logAttrISBN, isbn, logAttrStudentID, studentID.String())

	if promoted != nil {
		cs.logOperation(logOpReservationPromote, logAttrISBN, isbn, logAttrStudentID, promoted.StudentID.String())
	}

	return promoted, nil
}

// ReserveBook queues a student for a book with get-or-create semantics:
// a repeated call neither duplicates the reservation nor fails. The returned
// flag reports whether a new reservation was created.
func (cs CatalogStore) ReserveBook(ctx context.Context, reservation core.Reservation) (bool, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(cs.table(tableReservations)).
		Rows(goqu.Record{
			colStudentID:  reservation.StudentID.String(),
			colISBN:       reservation.ISBN,
			colReservedAt: reservation.ReservedAt,
		}).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if toSQLErr != nil {
		return false, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, _, err := cs.executeStatement(ctx, cs.db, sqlQuery)
	if err != nil {
		return false, err
	}

	created := rowsAffected > 0
	if created {
		cs.logOperation(logOpReservationTaken, logAttrISBN, reservation.ISBN, logAttrStudentID, reservation.StudentID.String())
	}

	return created, nil
}

// DeleteReservation cancels a student's reservation for a book.
func (cs CatalogStore) DeleteReservation(ctx context.Context, studentID uuid.UUID, isbn core.ISBNString) error {
	return cs.deleteReservationInTx(ctx, cs.db, studentID, isbn)
}

// ListReservations returns the reservation queue for a book in FIFO order.
func (cs CatalogStore) ListReservations(ctx context.Context, isbn core.ISBNString) ([]core.Reservation, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableReservations)).
		Select(colStudentID, colISBN, colReservedAt).
		Where(goqu.Ex{colISBN: isbn}).
		Order(goqu.I(colReservedAt).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, _, queryErr := cs.executeQuery(ctx, cs.db, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	reservations := make([]core.Reservation, 0)

	for rows.Next() {
		reservation, scanErr := cs.scanReservation(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// ListStudentBorrows returns all of a student's borrow records, newest first,
// open and closed alike.
func (cs CatalogStore) ListStudentBorrows(ctx context.Context, studentID uuid.UUID) ([]core.Borrow, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableBorrows)).
		Select(borrowColumns...).
		Where(goqu.Ex{colStudentID: studentID.String()}).
		Order(goqu.I(colBorrowedAt).Desc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return cs.queryBorrows(ctx, cs.db, sqlQuery)
}

// borrowInTx performs the borrow state transition within an open transaction.
// The order matters: the open-borrow check rejects duplicates first, then the
// guarded decrement settles availability at write time.
func (cs CatalogStore) borrowInTx(
	ctx context.Context,
	tx adapters.DBSession,
	isbn core.ISBNString,
	studentID uuid.UUID,
	now time.Time,
) (core.Borrow, error) {

	var empty core.Borrow

	openBorrow, findErr := cs.findOpenBorrow(ctx, tx, studentID, isbn)
	if findErr != nil {
		return empty, findErr
	}
	if openBorrow != nil {
		return empty, core.ErrAlreadyBorrowed
	}

	borrow := core.BuildBorrow(studentID, isbn, now)

	decrementQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(cs.table(tableBooks)).
		Set(goqu.Record{
			colQuantity:     goqu.L(colQuantity + " - 1"),
			colIsBorrowed:   true,
			colBorrowedBy:   studentID.String(),
			colBorrowedAt:   borrow.BorrowedAt,
			colToBeReturned: borrow.DueAt,
		}).
		Where(goqu.Ex{colISBN: isbn}, goqu.C(colQuantity).Gt(0)).
		ToSQL()
	if toSQLErr != nil {
		return empty, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, _, execErr := cs.executeStatement(ctx, tx, decrementQuery)
	if execErr != nil {
		return empty, execErr
	}

	if rowsAffected == 0 {
		// The guard did not match: either the book is gone or no copy is left.
		if _, getErr := cs.getBook(ctx, tx, isbn); getErr != nil {
			return empty, getErr
		}

		return empty, core.ErrNoCopiesAvailable
	}

	if insertErr := cs.insertBorrow(ctx, tx, borrow); insertErr != nil {
		return empty, insertErr
	}

	return borrow, nil
}

// insertBorrow writes an open borrow record.
func (cs CatalogStore) insertBorrow(ctx context.Context, tx adapters.DBSession, borrow core.Borrow) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(cs.table(tableBorrows)).
		Rows(goqu.Record{
			colBorrowID:   borrow.ID.String(),
			colStudentID:  borrow.StudentID.String(),
			colISBN:       borrow.ISBN,
			colBorrowedAt: borrow.BorrowedAt,
			colDueAt:      borrow.DueAt,
			colReturnedAt: nil,
		}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	_, _, execErr := cs.executeStatement(ctx, tx, sqlQuery)

	return execErr
}

// closeBorrow stamps the return time on an open borrow record.
func (cs CatalogStore) closeBorrow(ctx context.Context, tx adapters.DBSession, borrowID uuid.UUID, now time.Time) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(cs.table(tableBorrows)).
		Set(goqu.Record{colReturnedAt: core.ToTimestamp(now)}).
		Where(goqu.Ex{colBorrowID: borrowID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	_, _, execErr := cs.executeStatement(ctx, tx, sqlQuery)

	return execErr
}

// restockBook puts a returned copy back on the shelf and clears the
// denormalized borrow state, including the borrower pointer.
func (cs CatalogStore) restockBook(ctx context.Context, tx adapters.DBSession, isbn core.ISBNString, now time.Time) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(cs.table(tableBooks)).
		Set(goqu.Record{
			colQuantity:   goqu.L(colQuantity + " + 1"),
			colIsBorrowed: false,
			colBorrowedBy: nil,
			colReturnedAt: core.ToTimestamp(now),
		}).
		Where(goqu.Ex{colISBN: isbn}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, _, execErr := cs.executeStatement(ctx, tx, sqlQuery)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return core.ErrBookNotFound
	}

	return nil
}

// findOpenBorrow returns the student's open borrow for the book, or nil if none exists.
func (cs CatalogStore) findOpenBorrow(
	ctx context.Context,
	session adapters.DBSession,
	studentID uuid.UUID,
	isbn core.ISBNString,
) (*core.Borrow, error) {

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableBorrows)).
		Select(borrowColumns...).
		Where(goqu.Ex{
			colStudentID:  studentID.String(),
			colISBN:       isbn,
			colReturnedAt: nil,
		}).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	borrows, err := cs.queryBorrows(ctx, session, sqlQuery)
	if err != nil {
		return nil, err
	}

	if len(borrows) == 0 {
		return nil, nil
	}

	return &borrows[0], nil
}

// findEarliestReservation returns the head of the book's FIFO queue, or nil when the queue is empty.
func (cs CatalogStore) findEarliestReservation(
	ctx context.Context,
	session adapters.DBSession,
	isbn core.ISBNString,
) (*core.Reservation, error) {

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableReservations)).
		Select(colStudentID, colISBN, colReservedAt).
		Where(goqu.Ex{colISBN: isbn}).
		Order(goqu.I(colReservedAt).Asc()).
		Limit(1).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, _, queryErr := cs.executeQuery(ctx, session, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	if !rows.Next() {
		return nil, nil
	}

	reservation, scanErr := cs.scanReservation(rows)
	if scanErr != nil {
		return nil, scanErr
	}

	return &reservation, nil
}

// deleteReservationInTx removes a (student, book) reservation on the given session.
func (cs CatalogStore) deleteReservationInTx(
	ctx context.Context,
	session adapters.DBSession,
	studentID uuid.UUID,
	isbn core.ISBNString,
) error {

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Delete(cs.table(tableReservations)).
		Where(goqu.Ex{colStudentID: studentID.String(), colISBN: isbn}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	_, _, execErr := cs.executeStatement(ctx, session, sqlQuery)

	return execErr
}

// hasReservation reports whether the student is queued for the book.
func (cs CatalogStore) hasReservation(
	ctx context.Context,
	session adapters.DBSession,
	studentID uuid.UUID,
	isbn core.ISBNString,
) (bool, error) {

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableReservations)).
		Select(colStudentID).
		Where(goqu.Ex{colStudentID: studentID.String(), colISBN: isbn}).
		ToSQL()
	if toSQLErr != nil {
		return false, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, _, queryErr := cs.executeQuery(ctx, session, sqlQuery)
	if queryErr != nil {
		return false, queryErr
	}
	defer cs.closeRows(rows)

	return rows.Next(), nil
}

// queryBorrows executes a borrow select and scans all result rows.
func (cs CatalogStore) queryBorrows(ctx context.Context, session adapters.DBSession, sqlQuery string) ([]core.Borrow, error) {
	rows, _, queryErr := cs.executeQuery(ctx, session, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	borrows := make([]core.Borrow, 0)

	for rows.Next() {
		var borrow core.Borrow
		var id, studentID string
		var returnedAt sql.NullTime

		scanErr := rows.Scan(&id, &studentID, &borrow.ISBN, &borrow.BorrowedAt, &borrow.DueAt, &returnedAt)
		if scanErr != nil {
			if cs.logger != nil {
				cs.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, scanErr)
		}

		borrowID, parseErr := uuid.Parse(id)
		if parseErr != nil {
			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, parseErr)
		}

		borrowerID, parseErr := uuid.Parse(studentID)
		if parseErr != nil {
			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, parseErr)
		}

		borrow.ID = borrowID
		borrow.StudentID = borrowerID
		borrow.ReturnedAt = nullableTimestamp(returnedAt)

		borrows = append(borrows, borrow)
	}

	return borrows, nil
}

// scanReservation scans the current row into a reservation record.
func (cs CatalogStore) scanReservation(rows adapters.DBRows) (core.Reservation, error) {
	var empty core.Reservation
	var reservation core.Reservation
	var studentID string

	scanErr := rows.Scan(&studentID, &reservation.ISBN, &reservation.ReservedAt)
	if scanErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
		}

		return empty, errors.Join(catalogstore.ErrScanningDBRowFailed, scanErr)
	}

	parsedID, parseErr := uuid.Parse(studentID)
	if parseErr != nil {
		return empty, errors.Join(catalogstore.ErrScanningDBRowFailed, parseErr)
	}

	reservation.StudentID = parsedID

	return reservation, nil
}
