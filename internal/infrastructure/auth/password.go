package auth

import (
	"fmt"

	"github.com/campaign/backend/internal/domain/identity"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher; a cost outside bcrypt's range uses bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches hash
func (h *BcryptHasher) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

var _ identity.PasswordHasher = (*BcryptHasher)(nil)
