package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/tiffins/internal/auth"
	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/storage"
)

// AuthService handles signup, login and identity lookup.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
		logger:        logger,
	}
}

// Signup registers a new account and returns an access token for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", validation("missing_fields")
	}

	email = auth.NormalizeEmail(email)
	if !auth.ValidEmail(email) {
		return "", validation("invalid_email")
	}

	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		s.logger.Warn("signup failed", "email", email, "error", err)
		return "", err
	}

	token, err := s.jwtManager.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return token, nil
}

// Login authenticates an existing account and returns an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", validation("missing_fields")
	}

	user, err := s.authenticator.Authenticate(ctx, auth.NormalizeEmail(email), password)
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return "", err
	}

	token, err := s.jwtManager.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, storage.ErrNotFound
	}
	return user, nil
}
