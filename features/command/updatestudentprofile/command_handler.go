package updatestudentprofile

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuslib/library-circulation-go/core"
)

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
type CatalogStore interface {
	GetStudent(ctx context.Context, studentID uuid.UUID) (core.Student, error)
	UpdateStudentProfile(ctx context.Context, student core.Student) error
}

// CommandHandler orchestrates changing a student's profile.
type CommandHandler struct {
	catalogStore CatalogStore
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(catalogStore CatalogStore) CommandHandler {
	return CommandHandler{
		catalogStore: catalogStore,
	}
}

// Handle loads the current profile, overlays the changed fields, and persists
// the result. The student number and email always survive unchanged.
//
// Fails with core.ErrStudentNotFound when no profile exists for the ID.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Student, error) {
	student, err := h.catalogStore.GetStudent(ctx, command.StudentID)
	if err != nil {
		return core.Student{}, err
	}

	if command.FirstName != nil {
		student.FirstName = *command.FirstName
	}
	if command.MiddleInitial != nil {
		student.MiddleInitial = *command.MiddleInitial
	}
	if command.LastName != nil {
		student.LastName = *command.LastName
	}
	if command.Sex != nil {
		student.Sex = *command.Sex
	}
	if command.ClassYear != nil {
		student.ClassYear = *command.ClassYear
	}

	if err := h.catalogStore.UpdateStudentProfile(ctx, student); err != nil {
		return core.Student{}, err
	}

	return student, nil
}
