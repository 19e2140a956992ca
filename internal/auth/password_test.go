package auth_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/tiffins/internal/auth"
	"github.com/mmynk/tiffins/internal/storage/sqlite"
)

func newTestAuthenticator(t *testing.T) *auth.PasswordAuthenticator {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return auth.NewPasswordAuthenticator(store)
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register and authenticate", func(t *testing.T) {
		a := newTestAuthenticator(t)

		user, err := a.Register(ctx, "a@x.com", "A", "secret1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.ID == "" {
			t.Error("expected user ID to be generated")
		}
		if user.PasswordHash == "secret1" {
			t.Error("password must not be stored in plain text")
		}

		got, err := a.Authenticate(ctx, "a@x.com", "secret1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		a := newTestAuthenticator(t)
		if _, err := a.Register(ctx, "a@x.com", "A", "secret1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if _, err := a.Authenticate(ctx, "a@x.com", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		a := newTestAuthenticator(t)
		if _, err := a.Authenticate(ctx, "nobody@x.com", "secret1"); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		a := newTestAuthenticator(t)
		if _, err := a.Register(ctx, "a@x.com", "A", "short"); !errors.Is(err, auth.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		a := newTestAuthenticator(t)
		if _, err := a.Register(ctx, "a@x.com", "A", "secret1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		// Name and password don't matter; the email is taken.
		if _, err := a.Register(ctx, "a@x.com", "B", "different9"); !errors.Is(err, auth.ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"A@X.COM", "a@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"Mixed.Case@Example.Org", "mixed.case@example.org"},
	}
	for _, c := range cases {
		if got := auth.NormalizeEmail(c.in); got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last@sub.example.org"}
	invalid := []string{"", "plain", "a@x", "a b@x.com", "@x.com", "a@.com "}

	for _, email := range valid {
		if !auth.ValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if auth.ValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}
