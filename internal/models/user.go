package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered customer account.
//
// Accounts are created at signup and never mutated or deleted afterwards;
// there is no profile-edit path in this system.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name given at signup.
	Name string

	// Email is the user's email address, unique and stored lowercase.
	// Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to API responses.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser builds a user with a fresh ID and creation timestamp.
// The email is expected to be normalized (trimmed, lowercased) by the caller.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
