package redisrepo_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/repository/redisrepo"
)

func newTestRepository(t *testing.T) repository.FavoriteRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisrepo.NewFavoriteRepository(redisrepo.NewRedisForTest(client, nil))
}

func TestFavoriteRepository_AddRemove(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Add(ctx, "3"))
	require.NoError(t, repo.Add(ctx, "1"))
	require.NoError(t, repo.Add(ctx, "1"))

	exists, err := repo.Exists(ctx, "1")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "2")
	assert.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Remove(ctx, "3"))
	require.NoError(t, repo.Remove(ctx, "3"))

	exists, err = repo.Exists(ctx, "3")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteRepository_ListSorted(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Add(ctx, "7"))
	require.NoError(t, repo.Add(ctx, "2"))
	require.NoError(t, repo.Add(ctx, "10"))

	ids, err := repo.List(ctx)

	assert.NoError(t, err)
	// Лексикографический порядок: набор в Redis не упорядочен.
	assert.Equal(t, []string{"10", "2", "7"}, ids)
}

func TestFavoriteRepository_EmptyList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	ids, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Empty(t, ids)
}
