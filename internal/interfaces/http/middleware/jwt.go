package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/campaign/backend/internal/domain/identity"
	"github.com/campaign/backend/internal/infrastructure/auth"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTEmailKey   = "jwt_email"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// Tokens verifies bearer tokens
	Tokens identity.TokenService
	// Optional lets requests without a token through; a token that is
	// present must still be valid.
	Optional bool
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// Optional callback if token is invalid (default: return 401)
	OnError func(c *gin.Context, err error)
	Logger  *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration
func DefaultJWTConfig(tokens identity.TokenService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		Tokens: tokens,
		SkipPaths: []string{
			"/health",
			"/metrics",
			"/auth/login",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(tokens identity.TokenService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(tokens))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipAuth(c.Request.URL.Path, cfg) {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			if cfg.Optional {
				c.Next()
				return
			}
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.Tokens.Verify(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID.String())
		c.Set(JWTEmailKey, claims.Email)

		// Also set in request context for logger
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID.String()))

		if cfg.Logger != nil {
			cfg.Logger.Debug("JWT authentication successful",
				zap.String("user_id", claims.UserID.String()),
			)
		}

		c.Next()
	}
}

func skipAuth(path string, cfg JWTMiddlewareConfig) bool {
	for _, skipPath := range cfg.SkipPaths {
		if path == skipPath {
			return true
		}
	}
	for _, prefix := range cfg.SkipPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		errorCode = dto.ErrCodeTokenExpired
		errorMessage = "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		errorCode = dto.ErrCodeInvalidToken
		errorMessage = "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrMissingUserID):
		errorCode = dto.ErrCodeInvalidToken
		errorMessage = "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		errorCode, errorMessage, c.GetString(RequestIDKey),
	))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *identity.TokenClaims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if tc, ok := claims.(*identity.TokenClaims); ok {
			return tc
		}
	}
	return nil
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) (uuid.UUID, bool) {
	claims := GetJWTClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
