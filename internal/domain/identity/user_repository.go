package identity

import (
	"context"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll lists users
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// ExistsByEmail checks whether the email is taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a user; a duplicate email returns ErrAlreadyExists
	Create(ctx context.Context, user *User) error

	// Save updates an existing user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
