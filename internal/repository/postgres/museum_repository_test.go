package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/repository/postgres"
)

// newTestDB подключается к базе из TEST_DATABASE_DSN; без неё
// интеграционные тесты пропускаются.
func newTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping postgres integration test")
	}

	sqlxDB, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { sqlxDB.Close() })

	db := postgres.NewDBForTest(sqlxDB, nil)
	require.NoError(t, db.Migrate(context.Background()))

	_, err = sqlxDB.Exec(`TRUNCATE favorites, tours, museums`)
	require.NoError(t, err)

	return db
}

func TestMuseumRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := postgres.NewMuseumRepository(db)

	website := "https://example.com"
	m := domain.Museum{
		ID:               "bm",
		Name:             "British Museum",
		Description:      "World history collection",
		ShortDescription: "Ancient artefacts",
		Address:          "Great Russell Street",
		Latitude:         51.5194,
		Longitude:        -0.1269,
		ImageURL:         "https://example.com/bm.jpg",
		Category:         "History",
		FreeEntry:        true,
		OpeningHours:     "10:00-17:00",
		Website:          &website,
		Transport: []domain.TransportLink{
			{Type: "tube", Name: "Holborn", Distance: "5 min walk"},
		},
		NearbyEateries: []domain.NearbyEatery{
			{Name: "The Museum Tavern", Type: "Pub", Distance: "1 min walk", PriceRange: "££"},
		},
		Featured:  true,
		Rating:    4.8,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, &m))

	t.Run("get by id restores nested values", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "bm")

		require.NoError(t, err)
		assert.Equal(t, m.Name, got.Name)
		require.Len(t, got.Transport, 1)
		assert.Equal(t, "Holborn", got.Transport[0].Name)
		require.Len(t, got.NearbyEateries, 1)
		assert.Equal(t, "££", got.NearbyEateries[0].PriceRange)
		require.NotNil(t, got.Website)
		assert.Equal(t, website, *got.Website)
	})

	t.Run("filters", func(t *testing.T) {
		museums, err := repo.List(ctx, domain.MuseumFilter{Search: "ARTEFACTS"})
		require.NoError(t, err)
		assert.Len(t, museums, 1)

		museums, err = repo.List(ctx, domain.MuseumFilter{Category: "history"})
		require.NoError(t, err)
		assert.Empty(t, museums)

		museums, err = repo.List(ctx, domain.MuseumFilter{FreeOnly: true})
		require.NoError(t, err)
		assert.Len(t, museums, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")

		assert.Nil(t, got)
		assert.Equal(t, errors.ErrMuseumNotFound, err)
	})
}

func TestTourRepository_PostgresFlow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	museumRepo := postgres.NewMuseumRepository(db)
	repo := postgres.NewTourRepository(db)

	for _, id := range []string{"1", "2"} {
		require.NoError(t, museumRepo.Insert(ctx, &domain.Museum{
			ID: id, Name: "Museum " + id, Description: "d", ShortDescription: "s",
			Address: "a", ImageURL: "https://example.com/i.jpg", Category: "History",
			OpeningHours: "10-17", Rating: 4.5, CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, repo.SetPredefined(ctx, []domain.Tour{
		{ID: "classic", Name: "Classic", Color: "#E63946", MuseumIDs: []string{"1", "2"}},
	}))

	custom := domain.Tour{
		ID: "mine", Name: "Mine", Color: "#457B9D",
		MuseumIDs: []string{"2", "1", "2"}, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.InsertCustom(ctx, &custom))

	tours, err := repo.ListPredefined(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, []string{"1", "2"}, tours[0].MuseumIDs)

	got, err := repo.GetByID(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "2"}, got.MuseumIDs)

	require.NoError(t, repo.DeleteCustom(ctx, "mine"))
	assert.Equal(t, errors.ErrTourNotFound, repo.DeleteCustom(ctx, "mine"))
	assert.Equal(t, errors.ErrTourNotFound, repo.DeleteCustom(ctx, "classic"))
}

func TestFavoriteRepository_PostgresFlow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	museumRepo := postgres.NewMuseumRepository(db)
	repo := postgres.NewFavoriteRepository(db)

	require.NoError(t, museumRepo.Insert(ctx, &domain.Museum{
		ID: "1", Name: "Museum", Description: "d", ShortDescription: "s",
		Address: "a", ImageURL: "https://example.com/i.jpg", Category: "History",
		OpeningHours: "10-17", Rating: 4.5, CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, repo.Add(ctx, "1"))
	require.NoError(t, repo.Add(ctx, "1"))

	exists, err := repo.Exists(ctx, "1")
	require.NoError(t, err)
	assert.True(t, exists)

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)

	require.NoError(t, repo.Remove(ctx, "1"))
	require.NoError(t, repo.Remove(ctx, "1"))

	exists, err = repo.Exists(ctx, "1")
	require.NoError(t, err)
	assert.False(t, exists)
}
