package dto

import (
	"net/http"

	"github.com/campaign/backend/internal/domain/shared"
)

// Error codes raised by the HTTP layer itself. Domain codes come from
// the shared package and are passed through unchanged.
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInvalidToken    = "INVALID_TOKEN"
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeRouteNotFound   = "ROUTE_NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeValidation: http.StatusBadRequest,
	shared.CodeNotFound:   http.StatusNotFound,
	shared.CodeUpstream:   http.StatusInternalServerError,
	shared.CodeConflict:   http.StatusConflict,
	// a taken email answers 400, as registration clients expect
	shared.CodeAlreadyExists: http.StatusBadRequest,
	shared.CodeUnauthorized:  http.StatusUnauthorized,
	shared.CodeInternal:      http.StatusInternalServerError,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidToken:    http.StatusUnauthorized,
	ErrCodeTokenExpired:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRouteNotFound:   http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
