package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	value := []byte("payload")
	require.NoError(t, store.Set(ctx, "k", value, 0))
	value[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got, "stored value must not alias the caller's slice")
	assert.Equal(t, 1, store.ItemCount())

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_Expiration(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("v"), 5*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_Close(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	require.NoError(t, store.Close())
	assert.Equal(t, 0, store.ItemCount())
}
