package core

import (
	"time"

	"github.com/google/uuid"
)

// Account is the authenticated identity owning exactly one profile
// (Student or Librarian, depending on Role).
type Account struct {
	ID           uuid.UUID
	Email        EmailString
	PasswordHash string
	Role         Role
	CreatedAt    Timestamp
}

// BuildAccount creates an account identity with a fresh ID.
// The password must already be hashed; the domain never sees plaintext credentials.
func BuildAccount(email EmailString, passwordHash string, role Role, createdAt time.Time) Account {
	return Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    ToTimestamp(createdAt),
	}
}
