package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/catalogstore/postgresengine/internal/adapters"
	"github.com/campuslib/library-circulation-go/core"
)

const (
	colID            = "id"
	colEmail         = "email"
	colPasswordHash  = "password_hash"
	colRole          = "role"
	colCreatedAt     = "created_at"
	colFirstName     = "first_name"
	colMiddleInitial = "middle_initial"
	colLastName      = "last_name"
	colSex           = "sex"
	colClassYear     = "class_year"
	colStudentNumber = "student_number"
	colStaffNumber   = "staff_number"
)

var studentColumns = []any{
	colID, colFirstName, colMiddleInitial, colLastName, colSex, colClassYear, colStudentNumber, colEmail,
}

var librarianColumns = []any{
	colID, colFirstName, colMiddleInitial, colLastName, colSex, colStaffNumber, colEmail,
}

// RegisterStudent persists an account and its student profile all-or-nothing.
// A clashing email or numeric ID is reported as core.ErrDuplicateAccount and
// leaves no partial account behind.
func (cs CatalogStore) RegisterStudent(ctx context.Context, account core.Account, student core.Student) error {
	err := cs.withTx(ctx, func(tx adapters.DBTx) error {
		if err := cs.insertAccount(ctx, tx, account); err != nil {
			return err
		}

		sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
			Insert(cs.table(tableStudents)).
			Rows(goqu.Record{
				colID:            student.ID.String(),
				colFirstName:     student.FirstName,
				colMiddleInitial: student.MiddleInitial,
				colLastName:      student.LastName,
				colSex:           student.Sex,
				colClassYear:     student.ClassYear,
				colStudentNumber: student.StudentNumber,
				colEmail:         student.Email,
			}).
			ToSQL()
		if toSQLErr != nil {
			return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
		}

		_, _, execErr := cs.executeStatement(ctx, tx, sqlQuery)

		return execErr
	})

	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateAccount
		}

		return err
	}

	cs.logOperation(logOpAccountRegistered, colRole, account.Role.String(), colEmail, account.Email)

	return nil
}

// RegisterLibrarian persists an account and its librarian profile all-or-nothing.
func (cs CatalogStore) RegisterLibrarian(ctx context.Context, account core.Account, librarian core.Librarian) error {
	err := cs.withTx(ctx, func(tx adapters.DBTx) error {
		if err := cs.insertAccount(ctx, tx, account); err != nil {
			return err
		}

		sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
			Insert(cs.table(tableLibrarians)).
			Rows(goqu.Record{
				colID:            librarian.ID.String(),
				colFirstName:     librarian.FirstName,
				colMiddleInitial: librarian.MiddleInitial,
				colLastName:      librarian.LastName,
				colSex:           librarian.Sex,
				colStaffNumber:   librarian.StaffNumber,
				colEmail:         librarian.Email,
			}).
			ToSQL()
		if toSQLErr != nil {
			return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
		}

		_, _, execErr := cs.executeStatement(ctx, tx, sqlQuery)

		return execErr
	})

	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateAccount
		}

		return err
	}

	cs.logOperation(logOpAccountRegistered, colRole, account.Role.String(), colEmail, account.Email)

	return nil
}

// insertAccount writes the account identity row within a registration transaction.
func (cs CatalogStore) insertAccount(ctx context.Context, tx adapters.DBTx, account core.Account) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(cs.table(tableAccounts)).
		Rows(goqu.Record{
			colID:           account.ID.String(),
			colEmail:        account.Email,
			colPasswordHash: account.PasswordHash,
			colRole:         account.Role.String(),
			colCreatedAt:    account.CreatedAt,
		}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	_, _, execErr := cs.executeStatement(ctx, tx, sqlQuery)

	return execErr
}

// GetStudent fetches a student profile by the owning account's ID.
func (cs CatalogStore) GetStudent(ctx context.Context, studentID uuid.UUID) (core.Student, error) {
	var empty core.Student

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableStudents)).
		Select(studentColumns...).
		Where(goqu.Ex{colID: studentID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return empty, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	students, err := cs.queryStudents(ctx, sqlQuery)
	if err != nil {
		return empty, err
	}

	if len(students) == 0 {
		return empty, core.ErrStudentNotFound
	}

	return students[0], nil
}

// ListStudents returns all student profiles, the librarian's roster view.
func (cs CatalogStore) ListStudents(ctx context.Context) ([]core.Student, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableStudents)).
		Select(studentColumns...).
		Order(goqu.I(colLastName).Asc(), goqu.I(colFirstName).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return cs.queryStudents(ctx, sqlQuery)
}

// UpdateStudentProfile updates the mutable profile fields. The externally
// assigned identity fields (student number, email) are never touched.
func (cs CatalogStore) UpdateStudentProfile(ctx context.Context, student core.Student) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(cs.table(tableStudents)).
		Set(goqu.Record{
			colFirstName:     student.FirstName,
			colMiddleInitial: student.MiddleInitial,
			colLastName:      student.LastName,
			colSex:           student.Sex,
			colClassYear:     student.ClassYear,
		}).
		Where(goqu.Ex{colID: student.ID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, _, err := cs.executeStatement(ctx, cs.db, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrStudentNotFound
	}

	return nil
}

// GetLibrarian fetches a librarian profile by the owning account's ID.
func (cs CatalogStore) GetLibrarian(ctx context.Context, librarianID uuid.UUID) (core.Librarian, error) {
	var empty core.Librarian

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(cs.table(tableLibrarians)).
		Select(librarianColumns...).
		Where(goqu.Ex{colID: librarianID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return empty, errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	librarians, err := cs.queryLibrarians(ctx, sqlQuery)
	if err != nil {
		return empty, err
	}

	if len(librarians) == 0 {
		return empty, core.ErrLibrarianNotFound
	}

	return librarians[0], nil
}

// UpdateLibrarianProfile updates the mutable profile fields. The externally
// assigned identity fields (staff number, email) are never touched.
func (cs CatalogStore) UpdateLibrarianProfile(ctx context.Context, librarian core.Librarian) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(cs.table(tableLibrarians)).
		Set(goqu.Record{
			colFirstName:     librarian.FirstName,
			colMiddleInitial: librarian.MiddleInitial,
			colLastName:      librarian.LastName,
			colSex:           librarian.Sex,
		}).
		Where(goqu.Ex{colID: librarian.ID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(catalogstore.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, _, err := cs.executeStatement(ctx, cs.db, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrLibrarianNotFound
	}

	return nil
}

// queryStudents executes a student select and scans all result rows.
func (cs CatalogStore) queryStudents(ctx context.Context, sqlQuery string) ([]core.Student, error) {
	rows, _, queryErr := cs.executeQuery(ctx, cs.db, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	students := make([]core.Student, 0)

	for rows.Next() {
		var student core.Student
		var id string

		scanErr := rows.Scan(
			&id, &student.FirstName, &student.MiddleInitial, &student.LastName,
			&student.Sex, &student.ClassYear, &student.StudentNumber, &student.Email,
		)
		if scanErr != nil {
			if cs.logger != nil {
				cs.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, scanErr)
		}

		studentID, parseErr := uuid.Parse(id)
		if parseErr != nil {
			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, parseErr)
		}

		student.ID = studentID
		students = append(students, student)
	}

	return students, nil
}

// queryLibrarians executes a librarian select and scans all result rows.
func (cs CatalogStore) queryLibrarians(ctx context.Context, sqlQuery string) ([]core.Librarian, error) {
	rows, _, queryErr := cs.executeQuery(ctx, cs.db, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer cs.closeRows(rows)

	librarians := make([]core.Librarian, 0)

	for rows.Next() {
		var librarian core.Librarian
		var id string

		scanErr := rows.Scan(
			&id, &librarian.FirstName, &librarian.MiddleInitial, &librarian.LastName,
			&librarian.Sex, &librarian.StaffNumber, &librarian.Email,
		)
		if scanErr != nil {
			if cs.logger != nil {
				cs.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, scanErr)
		}

		librarianID, parseErr := uuid.Parse(id)
		if parseErr != nil {
			return nil, errors.Join(catalogstore.ErrScanningDBRowFailed, parseErr)
		}

		librarian.ID = librarianID
		librarians = append(librarians, librarian)
	}

	return librarians, nil
}
