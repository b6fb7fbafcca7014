package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/campaign/backend/internal/domain/identity"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormUserRepository(db.DB)
	ctx := context.Background()

	u, err := identity.NewUser("user1@test.com", "hash-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	t.Run("finds by email case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "USER1@test.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)

		exists, err := repo.ExistsByEmail(ctx, "user1@test.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate email fails without a second row", func(t *testing.T) {
		dup, err := identity.NewUser("user1@test.com", "hash-2")
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))

		var count int64
		require.NoError(t, db.DB.Model(&models.UserModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("save and delete", func(t *testing.T) {
		require.NoError(t, u.ReplacePassword("hash-3"))
		require.NoError(t, repo.Save(ctx, u))

		found, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "hash-3", found.PasswordHash)

		users, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, users, 1)

		require.NoError(t, repo.Delete(ctx, u.ID))
		_, err = repo.FindByID(ctx, u.ID)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
