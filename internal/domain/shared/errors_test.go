package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewNotFoundError("campaign not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrNotFound))
}

func TestDomainError_UpstreamKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := NewUpstreamError("catalog lookup failed", cause)

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "catalog lookup failed: dial tcp: i/o timeout", err.Error())

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeUpstream, domainErr.Code)
}
