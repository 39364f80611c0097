package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/repository/memory"
	"github.com/museums-api/internal/usecase"
)

func newFavoritesFixture(t *testing.T) (*usecase.FavoritesUseCase, repository.FavoriteRepository) {
	t.Helper()

	ctx := context.Background()
	museumRepo := memory.NewMuseumRepository()
	favoriteRepo := memory.NewFavoriteRepository()

	museums := []domain.Museum{
		{ID: "1", Name: "British Museum", Category: "History"},
		{ID: "2", Name: "Science Museum", Category: "Science"},
	}
	for i := range museums {
		require.NoError(t, museumRepo.Insert(ctx, &museums[i]))
	}

	return usecase.NewFavoritesUseCase(favoriteRepo, museumRepo, zap.NewNop()), favoriteRepo
}

func TestFavoritesUseCase_Add(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFavoritesFixture(t)

	t.Run("unknown museum cannot be favorited", func(t *testing.T) {
		err := uc.Add(ctx, "999")
		assert.Equal(t, errors.ErrMuseumNotFound, err)
	})

	t.Run("add then check", func(t *testing.T) {
		require.NoError(t, uc.Add(ctx, "1"))

		isFavorite, err := uc.Check(ctx, "1")
		assert.NoError(t, err)
		assert.True(t, isFavorite)
	})

	t.Run("check unknown id is false, not an error", func(t *testing.T) {
		isFavorite, err := uc.Check(ctx, "999")
		assert.NoError(t, err)
		assert.False(t, isFavorite)
	})
}

func TestFavoritesUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, favoriteRepo := newFavoritesFixture(t)

	require.NoError(t, uc.Add(ctx, "2"))
	require.NoError(t, uc.Add(ctx, "1"))

	t.Run("resolves museums in favorite order", func(t *testing.T) {
		museums, err := uc.List(ctx)

		require.NoError(t, err)
		require.Len(t, museums, 2)
		assert.Equal(t, "Science Museum", museums[0].Name)
		assert.Equal(t, "British Museum", museums[1].Name)
	})

	t.Run("dangling favorite is skipped", func(t *testing.T) {
		require.NoError(t, favoriteRepo.Add(ctx, "gone"))

		museums, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, museums, 2)
	})
}

func TestFavoritesUseCase_Remove(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFavoritesFixture(t)

	require.NoError(t, uc.Add(ctx, "1"))
	require.NoError(t, uc.Remove(ctx, "1"))

	isFavorite, err := uc.Check(ctx, "1")
	require.NoError(t, err)
	assert.False(t, isFavorite)

	// Повторное удаление - no-op.
	assert.NoError(t, uc.Remove(ctx, "1"))
}
