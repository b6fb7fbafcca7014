package identity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}

// TokenClaims is the identity carried by a signed token
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed credentials
type TokenService interface {
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}
