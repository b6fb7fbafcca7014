package identity

import (
	"regexp"
	"strings"

	"github.com/campaign/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is an account that can authenticate against the API
type User struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
}

// NewUser creates a user from an already hashed password.
// Emails are stored lower-cased so uniqueness is case-insensitive.
func NewUser(email, passwordHash string) (*User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewValidationError("Password hash cannot be empty")
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// ChangeEmail replaces the email address; callers check uniqueness first
func (u *User) ChangeEmail(email string) error {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return err
	}
	u.Email = email
	u.Touch()
	return nil
}

// ReplacePassword stores a new password hash
func (u *User) ReplacePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewValidationError("Password hash cannot be empty")
	}
	u.PasswordHash = passwordHash
	u.Touch()
	return nil
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the format of an already normalized email
func ValidateEmail(email string) error {
	if email == "" {
		return shared.NewValidationError("Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewValidationError("Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewValidationError("Invalid email format")
	}
	return nil
}

// ValidatePassword checks a plaintext password before hashing.
// bcrypt ignores everything past 72 bytes, so longer passwords are rejected.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewValidationError("Password must be at least 6 characters")
	}
	if len(password) > 72 {
		return shared.NewValidationError("Password cannot exceed 72 bytes")
	}
	return nil
}
