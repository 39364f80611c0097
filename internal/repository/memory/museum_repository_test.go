package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/repository/memory"
)

func seedMuseums(t *testing.T, repo repository.MuseumRepository) {
	t.Helper()

	museums := []domain.Museum{
		{ID: "1", Name: "British Museum", Description: "World history collection", ShortDescription: "Ancient artefacts", Category: "History", FreeEntry: true, Featured: true},
		{ID: "2", Name: "Science Museum", Description: "Interactive science halls", ShortDescription: "Science for everyone", Category: "Science", FreeEntry: true},
		{ID: "3", Name: "Design Museum", Description: "Contemporary design", ShortDescription: "Modern design shows", Category: "Design", FreeEntry: false, Featured: true},
	}

	for i := range museums {
		require.NoError(t, repo.Insert(context.Background(), &museums[i]))
	}
}

func TestMuseumRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMuseumRepository()
	seedMuseums(t, repo)

	t.Run("empty filter returns everything in insertion order", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{})

		assert.NoError(t, err)
		require.Len(t, museums, 3)
		assert.Equal(t, "1", museums[0].ID)
		assert.Equal(t, "2", museums[1].ID)
		assert.Equal(t, "3", museums[2].ID)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{Search: "SCIENCE"})

		assert.NoError(t, err)
		require.Len(t, museums, 1)
		assert.Equal(t, "2", museums[0].ID)
	})

	t.Run("search matches description fields", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{Search: "artefacts"})

		assert.NoError(t, err)
		require.Len(t, museums, 1)
		assert.Equal(t, "1", museums[0].ID)
	})

	t.Run("category is exact match", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{Category: "Design"})

		assert.NoError(t, err)
		require.Len(t, museums, 1)
		assert.Equal(t, "3", museums[0].ID)

		museums, err = repo.List(ctx, domain.MuseumFilter{Category: "design"})
		assert.NoError(t, err)
		assert.Empty(t, museums)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{Search: "museum", FreeOnly: true})

		assert.NoError(t, err)
		require.Len(t, museums, 2)
		assert.Equal(t, "1", museums[0].ID)
		assert.Equal(t, "2", museums[1].ID)
	})

	t.Run("unknown category yields empty list", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{Category: "Aerospace"})

		assert.NoError(t, err)
		assert.NotNil(t, museums)
		assert.Empty(t, museums)
	})
}

func TestMuseumRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMuseumRepository()
	seedMuseums(t, repo)

	t.Run("existing museum", func(t *testing.T) {
		m, err := repo.GetByID(ctx, "2")

		assert.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Science Museum", m.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		m, err := repo.GetByID(ctx, "999")

		assert.Nil(t, m)
		assert.Equal(t, errors.ErrMuseumNotFound, err)
	})
}

func TestMuseumRepository_Featured(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMuseumRepository()
	seedMuseums(t, repo)

	museums, err := repo.Featured(ctx)

	assert.NoError(t, err)
	require.Len(t, museums, 2)
	assert.Equal(t, "1", museums[0].ID)
	assert.Equal(t, "3", museums[1].ID)
}

func TestMuseumRepository_Categories(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMuseumRepository()
	seedMuseums(t, repo)

	categories, err := repo.Categories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Design", "History", "Science"}, categories)
}

func TestMuseumRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMuseumRepository()
	seedMuseums(t, repo)

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := repo.Insert(ctx, &domain.Museum{ID: "1", Name: "Clone"})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	})

	t.Run("count tracks inserts", func(t *testing.T) {
		count, err := repo.Count(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
