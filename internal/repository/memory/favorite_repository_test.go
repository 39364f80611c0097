package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/repository/memory"
)

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFavoriteRepository()

	t.Run("add and check", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "1"))
		require.NoError(t, repo.Add(ctx, "2"))

		exists, err := repo.Exists(ctx, "1")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, "999")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "1"))

		ids, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "0"))

		ids, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "0"}, ids)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, "2"))
		require.NoError(t, repo.Remove(ctx, "2"))

		ids, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "0"}, ids)
	})
}
