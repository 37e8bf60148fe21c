package borrowbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/command/borrowbook"
)

const testISBN = "9780306406157"

func Test_Decide_Success_WhenCopyAvailable(t *testing.T) {
	// arrange
	studentID := uuid.New()
	snapshot := catalogstore.CirculationSnapshot{
		Book: core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 2),
	}

	command := borrowbook.BuildCommand(testISBN, studentID, time.Now())

	// act
	result := borrowbook.Decide(snapshot, command)

	// assert
	assert.True(t, result.ShouldApply())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenStudentAlreadyHoldsCopy(t *testing.T) {
	// arrange
	studentID := uuid.New()
	openBorrow := core.BuildBorrow(studentID, testISBN, time.Now().Add(-48*time.Hour))

	snapshot := catalogstore.CirculationSnapshot{
		Book:       core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 1),
		OpenBorrow: &openBorrow,
	}

	command := borrowbook.BuildCommand(testISBN, studentID, time.Now())

	// act
	result := borrowbook.Decide(snapshot, command)

	// assert
	assert.False(t, result.ShouldApply())
	assert.ErrorIs(t, result.HasError(), core.ErrAlreadyBorrowed)
}

func Test_Decide_Error_WhenNoCopiesOnShelf(t *testing.T) {
	// arrange
	snapshot := catalogstore.CirculationSnapshot{
		Book: core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 0),
	}

	command := borrowbook.BuildCommand(testISBN, uuid.New(), time.Now())

	// act
	result := borrowbook.Decide(snapshot, command)

	// assert
	assert.False(t, result.ShouldApply())
	assert.ErrorIs(t, result.HasError(), core.ErrNoCopiesAvailable)
}
