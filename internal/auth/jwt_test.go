package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("issue and verify round trip", func(t *testing.T) {
		token, err := manager.Issue("user-123")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if token == "" {
			t.Fatal("expected a non-empty token")
		}

		userID, err := manager.Verify(token)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if userID != "user-123" {
			t.Errorf("expected user-123, got %s", userID)
		}
	})

	t.Run("verify rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.Issue("user-123")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("verify rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Issue("user-123")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("verify rejects malformed token", func(t *testing.T) {
		if _, err := manager.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("issue fails without a secret", func(t *testing.T) {
		unconfigured := NewJWTManager("", time.Hour)
		if _, err := unconfigured.Issue("user-123"); !errors.Is(err, ErrNoSecret) {
			t.Errorf("expected ErrNoSecret, got %v", err)
		}
	})
}
