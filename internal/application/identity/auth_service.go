package identity

import (
	"context"
	"errors"

	"github.com/campaign/backend/internal/domain/identity"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const invalidCredentials = "Invalid Credentials"

// AuthService authenticates users and issues tokens
type AuthService struct {
	userRepo identity.UserRepository
	hasher   identity.PasswordHasher
	tokens   identity.TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, hasher identity.PasswordHasher, tokens identity.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Login checks credentials and issues a token. An unknown email is reported
// as not found and a wrong password as unauthorized, with the same message.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError(invalidCredentials)
		}
		return nil, err
	}

	if !s.hasher.Compare(req.Password, user.PasswordHash) {
		logger.L(ctx).Warn("Login rejected", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, invalidCredentials)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, shared.NewInternalError("Error issuing token", err)
	}

	return &LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}

// Authenticate verifies a token and returns its claims
func (s *AuthService) Authenticate(token string) (*identity.TokenClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid or expired token")
	}
	return claims, nil
}
