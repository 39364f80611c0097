package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/repository/memory"
	"github.com/museums-api/internal/usecase"
	"github.com/museums-api/internal/usecase/dto"
)

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func newMuseumRequest() dto.CreateMuseumRequest {
	return dto.CreateMuseumRequest{
		Name:             "Horniman Museum",
		Description:      "Anthropology and natural history",
		ShortDescription: "Eclectic collection in Forest Hill",
		Address:          "100 London Rd, London SE23 3PQ",
		Latitude:         floatPtr(51.4412),
		Longitude:        floatPtr(-0.0607),
		ImageURL:         "https://example.com/horniman.jpg",
		Category:         "History",
		OpeningHours:     "10:00 - 17:30",
	}
}

func TestAdminUseCase_VerifyPIN(t *testing.T) {
	uc := usecase.NewAdminUseCase(memory.NewMuseumRepository(), "1234", zap.NewNop())

	assert.NoError(t, uc.VerifyPIN("1234"))
	assert.Equal(t, errors.ErrInvalidPIN, uc.VerifyPIN("0000"))
	assert.Equal(t, errors.ErrInvalidPIN, uc.VerifyPIN(""))
}

func TestAdminUseCase_CreateMuseum(t *testing.T) {
	ctx := context.Background()
	museumRepo := memory.NewMuseumRepository()
	uc := usecase.NewAdminUseCase(museumRepo, "1234", zap.NewNop())

	t.Run("wrong pin is rejected before any write", func(t *testing.T) {
		m, err := uc.CreateMuseum(ctx, "0000", newMuseumRequest())

		assert.Nil(t, m)
		assert.Equal(t, errors.ErrInvalidPIN, err)

		count, err := museumRepo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		m, err := uc.CreateMuseum(ctx, "1234", newMuseumRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, 4.5, m.Rating)
		assert.False(t, m.Featured)
		assert.NotNil(t, m.Transport)
		assert.Empty(t, m.Transport)
		assert.NotNil(t, m.NearbyEateries)
		assert.Empty(t, m.NearbyEateries)
		assert.False(t, m.CreatedAt.IsZero())

		stored, err := museumRepo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "Horniman Museum", stored.Name)
	})

	t.Run("explicit fields override defaults", func(t *testing.T) {
		req := newMuseumRequest()
		req.ID = "horniman-2"
		req.Rating = floatPtr(3.8)
		req.Featured = boolPtr(true)

		m, err := uc.CreateMuseum(ctx, "1234", req)

		require.NoError(t, err)
		assert.Equal(t, "horniman-2", m.ID)
		assert.Equal(t, 3.8, m.Rating)
		assert.True(t, m.Featured)
	})
}
