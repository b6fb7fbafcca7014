package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, hasher.Compare("123456", hash))
	assert.False(t, hasher.Compare("654321", hash))
	assert.False(t, hasher.Compare("123456", "not-a-hash"))
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 4, NewBcryptHasher(4).cost)
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	_, err := hasher.Hash(string(long))
	assert.Error(t, err)
}
