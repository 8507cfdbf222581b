// Package analytics computes derived reports over the persisted trajectory
// model. Every computation here is a pure fold over point sequences; the
// caller supplies points grouped by activity and chronologically sorted,
// which is a documented precondition, not a runtime check.
package analytics

import (
	"time"

	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/spatial"
)

const (
	// FeetToMeters converts altitude readings to meters
	FeetToMeters = 0.3048

	// GapThreshold marks an activity invalid when two consecutive points
	// are at least this far apart in time.
	GapThreshold = 5 * time.Minute
)

// TotalDistanceKm sums the haversine distance between every consecutive
// pair of points of one activity. Returns 0 for fewer than 2 points.
func TotalDistanceKm(points []models.TrackPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		total += spatial.HaversineDistanceKm(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
	}
	return total
}

// AltitudeGainMeters folds consecutive altitude readings of one activity
// into total meters climbed. Only positive deltas between two valid
// readings count; a missing reading breaks the chain, so the point after
// a gap is never compared against the point before it.
func AltitudeGainMeters(points []models.TrackPoint) float64 {
	var gain float64
	var prev *int
	for _, p := range points {
		if p.Altitude != nil && prev != nil {
			if diff := *p.Altitude - *prev; diff > 0 {
				gain += float64(diff) * FeetToMeters
			}
		}
		prev = p.Altitude
	}
	return gain
}

// HasInvalidGap reports whether any two consecutive points of one activity
// are GapThreshold or more apart. Short-circuits on the first gap.
func HasInvalidGap(points []models.TrackPoint) bool {
	for i := 1; i < len(points); i++ {
		prev, err := time.Parse(models.TimeLayout, points[i-1].DateTime)
		if err != nil {
			continue
		}
		curr, err := time.Parse(models.TimeLayout, points[i].DateTime)
		if err != nil {
			continue
		}
		if curr.Sub(prev) >= GapThreshold {
			return true
		}
	}
	return false
}

// AnyInside reports whether any point falls inside the geofence.
// Short-circuits on the first hit.
func AnyInside(points []models.TrackPoint, fence spatial.Geofence) bool {
	for _, p := range points {
		if fence.Contains(p.Latitude, p.Longitude) {
			return true
		}
	}
	return false
}
