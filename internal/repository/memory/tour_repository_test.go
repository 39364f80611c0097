package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/repository/memory"
)

func TestTourRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTourRepository()

	predefined := []domain.Tour{
		{ID: "classic", Kind: domain.TourKindPredefined, Name: "Classic", MuseumIDs: []string{"1", "2"}},
	}
	require.NoError(t, repo.SetPredefined(ctx, predefined))

	custom := domain.Tour{ID: "mine", Kind: domain.TourKindCustom, Name: "Mine", MuseumIDs: []string{"2", "1", "2"}}
	require.NoError(t, repo.InsertCustom(ctx, &custom))

	t.Run("lists are segregated by kind", func(t *testing.T) {
		tours, err := repo.ListPredefined(ctx)
		assert.NoError(t, err)
		require.Len(t, tours, 1)
		assert.Equal(t, "classic", tours[0].ID)

		tours, err = repo.ListCustom(ctx)
		assert.NoError(t, err)
		require.Len(t, tours, 1)
		assert.Equal(t, "mine", tours[0].ID)
	})

	t.Run("get by id searches both kinds", func(t *testing.T) {
		tour, err := repo.GetByID(ctx, "classic")
		assert.NoError(t, err)
		assert.Equal(t, domain.TourKindPredefined, tour.Kind)

		tour, err = repo.GetByID(ctx, "mine")
		assert.NoError(t, err)
		assert.Equal(t, []string{"2", "1", "2"}, tour.MuseumIDs)

		_, err = repo.GetByID(ctx, "nope")
		assert.Equal(t, errors.ErrTourNotFound, err)
	})

	t.Run("returned tours are isolated from the store", func(t *testing.T) {
		tour, err := repo.GetByID(ctx, "mine")
		require.NoError(t, err)

		tour.MuseumIDs[0] = "mutated"

		again, err := repo.GetByID(ctx, "mine")
		require.NoError(t, err)
		assert.Equal(t, "2", again.MuseumIDs[0])
	})

	t.Run("delete custom, repeat delete is 404", func(t *testing.T) {
		require.NoError(t, repo.DeleteCustom(ctx, "mine"))
		assert.Equal(t, errors.ErrTourNotFound, repo.DeleteCustom(ctx, "mine"))
	})

	t.Run("predefined tours are not deletable", func(t *testing.T) {
		assert.Equal(t, errors.ErrTourNotFound, repo.DeleteCustom(ctx, "classic"))

		tours, err := repo.ListPredefined(ctx)
		assert.NoError(t, err)
		assert.Len(t, tours, 1)
	})
}
