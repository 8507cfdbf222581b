package spatial

import (
	"github.com/golang/geo/s2"
)

// Geofence is a rectangular lat/lon bounding box with inclusive bounds
type Geofence struct {
	rect s2.Rect
}

// NewGeofence builds a geofence from its south-west and north-east corners
func NewGeofence(minLat, minLon, maxLat, maxLon float64) Geofence {
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(minLat, minLon))
	rect = rect.AddPoint(s2.LatLngFromDegrees(maxLat, maxLon))
	return Geofence{rect: rect}
}

// Contains reports whether the point lies inside the box, bounds included
func (g Geofence) Contains(lat, lon float64) bool {
	return g.rect.ContainsLatLng(s2.LatLngFromDegrees(lat, lon))
}

// ForbiddenCity is the bounding box used by the containment report,
// roughly 960m north-south by 750m east-west around the palace grounds.
var ForbiddenCity = NewGeofence(39.912, 116.393, 39.920, 116.401)
