package registeraccount

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuslib/library-circulation-go/core"
)

// ErrEmptyPassword is returned when a registration carries no password.
var ErrEmptyPassword = errors.New("password must not be empty")

// CatalogStore defines the interface needed by the CommandHandler for catalog store operations.
// Both registration calls persist the account and its profile all-or-nothing.
type CatalogStore interface {
	RegisterStudent(ctx context.Context, account core.Account, student core.Student) error
	RegisterLibrarian(ctx context.Context, account core.Account, librarian core.Librarian) error
}

// CommandHandler orchestrates account registration: role resolution from the
// email domain, credential hashing, and transactional persistence of the
// account with its role profile.
type CommandHandler struct {
	catalogStore      CatalogStore
	institutionDomain string
	bcryptCost        int
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithInstitutionDomain overrides the institution whose subdomains are
// recognized at registration. Defaults to core.DefaultInstitutionDomain.
func WithInstitutionDomain(domain string) Option {
	return func(h *CommandHandler) {
		h.institutionDomain = domain
	}
}

// WithBcryptCost overrides the bcrypt cost factor, mainly to speed up tests.
func WithBcryptCost(cost int) Option {
	return func(h *CommandHandler) {
		h.bcryptCost = cost
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(catalogStore CatalogStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		catalogStore:      catalogStore,
		institutionDomain: core.DefaultInstitutionDomain,
		bcryptCost:        bcrypt.DefaultCost,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the registration workflow and returns the created account.
//
// The role is resolved before anything is hashed or persisted, so an email
// with an unrecognized domain suffix fails with core.ErrUnrecognizedDomain
// and leaves no partial state behind. A duplicate email fails with
// core.ErrDuplicateAccount.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Account, error) {
	role, err := core.ResolveRole(command.Email, h.institutionDomain)
	if err != nil {
		return core.Account{}, err
	}

	if command.Password == "" {
		return core.Account{}, ErrEmptyPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(command.Password), h.bcryptCost)
	if err != nil {
		return core.Account{}, err
	}

	account := core.BuildAccount(command.Email, string(passwordHash), role, command.RequestedAt)

	switch role {
	case core.RoleStudent:
		student := core.BuildStudent(
			account.ID,
			command.Profile.FirstName,
			command.Profile.MiddleInitial,
			command.Profile.LastName,
			command.Profile.Sex,
			command.Profile.ClassYear,
			command.Profile.StudentNumber,
			command.Email,
		)

		err = h.catalogStore.RegisterStudent(ctx, account, student)

	case core.RoleLibrarian:
		librarian := core.BuildLibrarian(
			account.ID,
			command.Profile.FirstName,
			command.Profile.MiddleInitial,
			command.Profile.LastName,
			command.Profile.Sex,
			command.Profile.StaffNumber,
			command.Email,
		)

		err = h.catalogStore.RegisterLibrarian(ctx, account, librarian)
	}

	if err != nil {
		return core.Account{}, err
	}

	return account, nil
}
