package shared

// Error codes shared by every bounded context.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeConflict      = "CONFLICT"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternal      = "INTERNAL_ERROR"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrNotFound) matches every not-found error.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports bad input shape or value.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError reports an absent campaign, product or catalog entry.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewUpstreamError reports a failing external dependency and keeps the cause.
func NewUpstreamError(message string, cause error) *DomainError {
	return &DomainError{Code: CodeUpstream, Message: message, cause: cause}
}

// NewConflictError reports a uniqueness violation that could not be resolved.
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewInternalError reports a failure the caller cannot fix, keeping the cause
// for logs while exposing only message.
func NewInternalError(message string, cause error) *DomainError {
	return &DomainError{Code: CodeInternal, Message: message, cause: cause}
}

// Common domain errors
var (
	ErrValidation    = NewDomainError(CodeValidation, "Invalid input provided")
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrUpstream      = NewDomainError(CodeUpstream, "Upstream service failed")
	ErrConflict      = NewDomainError(CodeConflict, "Resource conflicts with an existing one")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrUnauthorized  = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrInternal      = NewDomainError(CodeInternal, "An unexpected error occurred")
)
