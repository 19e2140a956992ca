package auth

import (
	"context"

	"github.com/mmynk/tiffins/internal/models"
)

// Authenticator defines the interface for credential-based authentication.
// The abstraction keeps the service layer independent of the hashing scheme.
type Authenticator interface {
	// Register creates a new user account. The email must already be
	// normalized by NormalizeEmail. Fails with ErrEmailExists when the
	// email is taken and ErrWeakPassword when the password is too short.
	Register(ctx context.Context, email, name, password string) (*models.User, error)

	// Authenticate verifies the email/password pair and returns the user.
	// Fails with ErrInvalidCredentials on unknown email or wrong password,
	// deliberately without distinguishing the two.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}
