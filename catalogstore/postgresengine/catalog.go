package postgresengine

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine/internal/adapters"
	"github.com/campuslib/library-circulation-go/core"
)

const (
	colISBN         = "isbn"
	colTitle        = "title"
	colAuthor       = "author"
	colPublisher    = "publisher"
	colYear         = "year"
	colLanguage     = "language"
	colQuantity     = "quantity"
	colIsBorrowed   = "is_borrowed"
	colBorrowedBy   = "borrowed_by"
	colBorrowedAt   = "borrowed_at"
	colToBeReturned = "to_be_returned"
	colReturnedAt   = "returned_at"
)

var bookColumns = []any{
	colISBN, colTitle, colAuthor, colPublisher, colYear, colLanguage,
	colQuantity, colIsBorrowed, colBorrowedBy, colBorrowedAt, colToBeReturned, colReturnedAt,
}

// InsertBook adds a catalog record. A duplicate identifier is reported as
// core.ErrDuplicateIdentifier.
func (cs CatalogStore) InsertBook(ctx context.Context, book core.Book) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(cs.table(tableBooks)).
		Rows(bookRecord(book)).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	if _, _, err := cs.executeStatement(ctx, cs.db, sqlQuery); err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateIdentifier
		}

		return err
	}

	return nil
}

// GetBook fetches a single catalog record by its canonical identifier.
func (cs CatalogStore) GetBook(ctx context.Context, isbn core.ISBNString) (core.Book, error) {
	return cs.getBook(ctx, cs.db, isbn)
}

// HasBook reports whether a catalog record exists for the identifier.
func (cs CatalogStore) HasBook(ctx context.Context, isbn core.ISBNString) (bool, error) {
	_, err := cs.GetBook(ctx, isbn)
	if errors.Is(err, core.ErrBookNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// ListBooks returns the whole catalog ordered by title.
func (cs CatalogStore) ListBooks(ctx context.Context) ([]core.Book, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableBooks)).
		Select(bookColumns...).
		Order(goqu.I(colTitle).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return cs.queryBooks(ctx, cs.db, sqlQuery)
}

// ListBorrowedBooks returns the catalog records currently flagged as borrowed,
// the librarian's "all borrowed books" view.
func (cs CatalogStore) ListBorrowedBooks(ctx context.Context) ([]core.Book, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableBooks)).
		Select(bookColumns...).
		Where(goqu.Ex{colIsBorrowed: true}).
		Order(goqu.I(colTitle).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return cs.queryBooks(ctx, cs.db, sqlQuery)
}

// DeleteBook removes a catalog record by its canonical identifier, together
// with the book's reservation queue, in one transaction.
func (cs CatalogStore) DeleteBook(ctx context.Context, isbn core.ISBNString) error {
	deleteBookQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Delete(cs.table(tableBooks)).
		Where(goqu.Ex{colISBN: isbn}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	deleteReservationsQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Delete(cs.table(tableReservations)).
		Where(goqu.Ex{colISBN: isbn}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return cs.withTx(ctx, func(tx adapters.DBTx) error {
		rowsAffected, _, err := cs.executeStatement(ctx, tx, deleteBookQuery)
		if err != nil {
			return err
		}

		if rowsAffected == 0 {
			return core.ErrBookNotFound
		}

		_, _, err = cs.executeStatement(ctx, tx, deleteReservationsQuery)

		return err
	})
}

// getBook fetches a book on the given session so circulation transactions can reuse it.
func (cs CatalogStore) getBook(ctx context.Context, session adapters.DBSession, isbn core.ISBNString) (core.Book, error) {
	var empty core.Book

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableBooks)).
		Select(bookColumns...).
		Where(goqu.Ex{colISBN: isbn}).
		ToSQL()
	if toSQLErr != nil {
		return empty, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	books, err := cs.queryBooks(ctx, session, sqlQuery)
	if err != nil {
		return empty, err
	}

	if len(books) == 0 {
		return empty, core.ErrBookNotFound
	}

	return books[0], nil
}

// queryBooks executes a book select and scans all result rows.
func (cs CatalogStore) queryBooks(ctx context.Context, session adapters.DBSession, sqlQuery string) ([]core.Book, error) {
	rows, _, queryErr := cs.executeQuery(ctx, session, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	books := make([]core.Book, 0)

	for rows.Next() {
		book, scanErr := cs.scanBook(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		books = append(books, book)
	}

	return books, nil
}

// scanBook scans the current row into a catalog record.
func (cs CatalogStore) scanBook(rows adapters.DBRows) (core.Book, error) {
	var empty core.Book
	var book core.Book
	var borrowedBy sql.NullString
	var borrowedAt, dueAt, returnedAt sql.NullTime

	scanErr := rows.Scan(
		&book.ISBN, &book.Title, &book.Author, &book.Publisher, &book.Year, &book.Language,
		&book.Quantity, &book.IsBorrowed, &borrowedBy, &borrowedAt, &dueAt, &returnedAt,
	)
	if scanErr != nil {
		if cs.logger != nil {
			cs.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
		}

		return empty, errors.Join(catalogstore.ErrScanningDBRowFailed, scanErr)
	}

	if borrowedBy.Valid {
		studentID, parseErr := uuid.Parse(borrowedBy.String)
		if parseErr != nil {
			return empty, errors.Join(catalogstore.ErrScanningDBRowFailed, parseErr)
		}

		book.BorrowedBy = &studentID
	}

	book.BorrowedAt = nullableTimestamp(borrowedAt)
	book.DueAt = nullableTimestamp(dueAt)
	book.ReturnedAt = nullableTimestamp(returnedAt)

	return book, nil
}

// bookRecord maps a catalog record onto its column values for inserts.
func bookRecord(book core.Book) goqu.Record {
	record := goqu.Record{
		colISBN:       book.ISBN,
		colTitle:      book.Title,
		colAuthor:     book.Author,
		colPublisher:  book.Publisher,
		colYear:       book.Year,
		colLanguage:   book.Language,
		colQuantity:   book.Quantity,
		colIsBorrowed: book.IsBorrowed,
	}

	record[colBorrowedBy] = nil
	if book.BorrowedBy != nil {
		record[colBorrowedBy] = book.BorrowedBy.String()
	}

	record[colBorrowedAt] = nullableTimeValue(book.BorrowedAt)
	record[colToBeReturned] = nullableTimeValue(book.DueAt)
	record[colReturnedAt] = nullableTimeValue(book.ReturnedAt)

	return record
}

func nullableTimestamp(t sql.NullTime) *core.Timestamp {
	if !t.Valid {
		return nil
	}

	normalized := core.ToTimestamp(t.Time)

	return &normalized
}

func nullableTimeValue(t *core.Timestamp) any {
	if t == nil {
		return nil
	}

	return *t
}
