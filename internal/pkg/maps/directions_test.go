package maps_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/pkg/maps"
)

func TestDirectionsURL(t *testing.T) {
	points := []maps.Waypoint{
		{Latitude: 51.5194, Longitude: -0.127, Name: "British Museum"},
		{Latitude: 51.4978, Longitude: -0.1745, Name: "Science Museum"},
		{Latitude: 51.5076, Longitude: -0.0994, Name: "Tate Modern"},
	}

	t.Run("no points", func(t *testing.T) {
		link, err := maps.DirectionsURL(nil)

		assert.Empty(t, link)
		assert.Equal(t, errors.ErrEmptyTourMuseums, err)
	})

	t.Run("single point is its own destination", func(t *testing.T) {
		link, err := maps.DirectionsURL(points[:1])
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)

		q := parsed.Query()
		assert.Equal(t, "1", q.Get("api"))
		assert.Equal(t, "51.5194,-0.127", q.Get("origin"))
		assert.Equal(t, "51.5194,-0.127", q.Get("destination"))
		assert.Empty(t, q.Get("waypoints"))
		assert.Equal(t, "walking", q.Get("travelmode"))
	})

	t.Run("two points have no waypoints", func(t *testing.T) {
		link, err := maps.DirectionsURL(points[:2])
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)

		q := parsed.Query()
		assert.Equal(t, "51.5194,-0.127", q.Get("origin"))
		assert.Equal(t, "51.4978,-0.1745", q.Get("destination"))
		assert.Empty(t, q.Get("waypoints"))
	})

	t.Run("interior points become waypoints in order", func(t *testing.T) {
		link, err := maps.DirectionsURL(points)
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)

		q := parsed.Query()
		assert.Equal(t, "51.5194,-0.127", q.Get("origin"))
		assert.Equal(t, "51.5076,-0.0994", q.Get("destination"))
		assert.Equal(t, "51.4978,-0.1745", q.Get("waypoints"))
	})

	t.Run("waypoint separator survives encoding", func(t *testing.T) {
		many := append(points, maps.Waypoint{Latitude: 51.5014, Longitude: -0.1419})
		link, err := maps.DirectionsURL(many)
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)

		assert.Equal(t, "51.4978,-0.1745|51.5076,-0.0994", parsed.Query().Get("waypoints"))
	})
}
