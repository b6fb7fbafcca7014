package identity

import (
	"context"

	"github.com/campaign/backend/internal/domain/identity"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const emailTaken = "e-mail already exists"

// UserService handles user account operations
type UserService struct {
	userRepo identity.UserRepository
	hasher   identity.PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, hasher identity.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Create registers a user. A taken email fails with ErrAlreadyExists and
// stores nothing.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	email := identity.NormalizeEmail(req.Email)
	if err := identity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := identity.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, emailTaken)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.L(ctx).Error("Failed to hash password", zap.Error(err))
		return nil, shared.NewInternalError("Error creating user", err)
	}

	user, err := identity.NewUser(email, hash)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("User created", zap.String("user_id", user.ID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByID returns a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List returns users matching filter
func (s *UserService) List(ctx context.Context, filter shared.Filter) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out, nil
}

// Update changes a user's email and/or password
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := identity.NormalizeEmail(*req.Email)
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError(shared.CodeAlreadyExists, emailTaken)
			}
			if err := user.ChangeEmail(email); err != nil {
				return nil, err
			}
		}
	}

	if req.Password != nil {
		if err := identity.ValidatePassword(*req.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, shared.NewInternalError("Error updating user", err)
		}
		if err := user.ReplacePassword(hash); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
