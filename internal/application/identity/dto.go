package identity

import (
	"time"

	"github.com/campaign/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=200"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}

// UserResponse represents a user in API responses; the hash is never exposed
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a domain user to a response
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
