package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")

	// ErrNoSecret is returned when token issuance is attempted without a
	// configured signing secret. Issuing an unverifiable token would let
	// every login silently fail later, so this is a hard error instead.
	ErrNoSecret = errors.New("signing secret not configured")
)

// TokenTTL is how long issued tokens remain valid. There is no refresh
// mechanism; logging in again is the only renewal path.
const TokenTTL = time.Hour

// JWTManager issues and verifies HS256-signed identity tokens.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// Claims carries the authenticated user id inside the token.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a manager signing with the given secret. An empty
// secret is allowed at construction time (the server still boots, matching
// the original deployment behavior) but Issue will refuse to sign.
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Issue creates a signed token encoding the user id, expiring after the
// configured duration.
func (m *JWTManager) Issue(userID string) (string, error) {
	if len(m.secretKey) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the user id it encodes.
// Malformed, mis-signed and expired tokens all fail with ErrInvalidToken.
func (m *JWTManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
