package reservebook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campuslib/library-circulation-go/catalogstore"
	"github.com/campuslib/library-circulation-go/core"
	"github.com/campuslib/library-circulation-go/features/command/reservebook"
)

const testISBN = "9780306406157"

func Test_Decide_Success_WhenShelfEmptyAndNotQueued(t *testing.T) {
	// arrange
	snapshot := catalogstore.CirculationSnapshot{
		Book: core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 0),
	}

	command := reservebook.BuildCommand(testISBN, uuid.New(), time.Now())

	// act
	result := reservebook.Decide(snapshot, command)

	// assert
	assert.True(t, result.ShouldApply())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Idempotent_WhenAlreadyQueued(t *testing.T) {
	// arrange
	snapshot := catalogstore.CirculationSnapshot{
		Book:           core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 0),
		HasReservation: true,
	}

	command := reservebook.BuildCommand(testISBN, uuid.New(), time.Now())

	// act
	result := reservebook.Decide(snapshot, command)

	// assert
	assert.False(t, result.ShouldApply())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenStudentHoldsTheCopy(t *testing.T) {
	// arrange
	studentID := uuid.New()
	openBorrow := core.BuildBorrow(studentID, testISBN, time.Now().Add(-time.Hour))

	snapshot := catalogstore.CirculationSnapshot{
		Book:       core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 0),
		OpenBorrow: &openBorrow,
	}

	command := reservebook.BuildCommand(testISBN, studentID, time.Now())

	// act
	result := reservebook.Decide(snapshot, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrAlreadyBorrowed)
}

func Test_Decide_Error_WhenCopyIsAvailable(t *testing.T) {
	// arrange
	snapshot := catalogstore.CirculationSnapshot{
		Book: core.BuildBook(testISBN, "Molecular Biology", "Bruce Alberts", "Garland", 2015, "en", 1),
	}

	command := reservebook.BuildCommand(testISBN, uuid.New(), time.Now())

	// act
	result := reservebook.Decide(snapshot, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrCopiesAvailable)
}
