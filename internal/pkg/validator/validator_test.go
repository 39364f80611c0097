package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/pkg/validator"
	"github.com/museums-api/internal/usecase/dto"
)

func TestValidate_CreateTourRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		err := validator.Validate(&dto.CreateTourRequest{
			Name:      "Walk",
			MuseumIDs: []string{"1"},
		})
		assert.NoError(t, err)
	})

	t.Run("missing museum ids", func(t *testing.T) {
		err := validator.Validate(&dto.CreateTourRequest{Name: "Walk"})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Contains(t, appErr.Message, "MuseumIDs")
	})

	t.Run("bad color", func(t *testing.T) {
		err := validator.Validate(&dto.CreateTourRequest{
			Name:      "Walk",
			MuseumIDs: []string{"1"},
			Color:     "red",
		})
		assert.Error(t, err)
	})
}

func TestValidate_CreateMuseumRequest(t *testing.T) {
	lat, lon := 51.5, -0.12
	valid := dto.CreateMuseumRequest{
		Name:             "Museum",
		Description:      "d",
		ShortDescription: "s",
		Address:          "a",
		Latitude:         &lat,
		Longitude:        &lon,
		ImageURL:         "https://example.com/i.jpg",
		Category:         "History",
		OpeningHours:     "10-17",
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validator.Validate(&valid))
	})

	t.Run("latitude out of range", func(t *testing.T) {
		bad := valid
		badLat := 91.0
		bad.Latitude = &badLat

		err := validator.Validate(&bad)

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Message, "Latitude")
	})

	t.Run("rating out of range", func(t *testing.T) {
		bad := valid
		badRating := 5.5
		bad.Rating = &badRating

		assert.Error(t, validator.Validate(&bad))
	})
}
