// Package maps строит deep links во внешнее картографическое приложение.
// Сервис не считает маршрут сам - он передаёт упорядоченные точки тура
// в Google Maps в пешеходном режиме.
package maps

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/museums-api/internal/pkg/errors"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

// Waypoint - одна остановка маршрута.
type Waypoint struct {
	Latitude  float64
	Longitude float64
	Name      string
}

// DirectionsURL строит URL мульти-стопового пешеходного маршрута:
// первая точка - origin, последняя - destination, промежуточные - waypoints
// в исходном порядке. Одна точка допустима: origin совпадает с destination.
func DirectionsURL(points []Waypoint) (string, error) {
	if len(points) == 0 {
		return "", errors.ErrEmptyTourMuseums
	}

	origin := points[0]
	destination := points[len(points)-1]

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", formatPoint(origin))
	q.Set("destination", formatPoint(destination))

	if len(points) > 2 {
		middle := make([]string, 0, len(points)-2)
		for _, p := range points[1 : len(points)-1] {
			middle = append(middle, formatPoint(p))
		}
		q.Set("waypoints", strings.Join(middle, "|"))
	}

	q.Set("travelmode", "walking")

	return directionsBaseURL + "?" + q.Encode(), nil
}

func formatPoint(p Waypoint) string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}
