package analytics

import (
	"math"
	"testing"

	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/spatial"
)

func alt(v int) *int { return &v }

func TestTotalDistanceKmFewerThanTwoPoints(t *testing.T) {
	if d := TotalDistanceKm(nil); d != 0 {
		t.Errorf("Expected 0 for empty sequence, got %v", d)
	}
	one := []models.TrackPoint{{Latitude: 39.9, Longitude: 116.3}}
	if d := TotalDistanceKm(one); d != 0 {
		t.Errorf("Expected 0 for a single point, got %v", d)
	}
}

func TestTotalDistanceKm(t *testing.T) {
	points := []models.TrackPoint{
		{Latitude: 39.900, Longitude: 116.300},
		{Latitude: 39.910, Longitude: 116.300}, // ~1.11 km north
		{Latitude: 39.920, Longitude: 116.300}, // ~1.11 km more
	}

	got := TotalDistanceKm(points)
	expected := 2.22
	if math.Abs(got-expected) > 0.05 {
		t.Errorf("Expected ~%.2f km, got %.3f km", expected, got)
	}
}

func TestAltitudeGainFewerThanTwoPoints(t *testing.T) {
	if g := AltitudeGainMeters(nil); g != 0 {
		t.Errorf("Expected 0 for empty sequence, got %v", g)
	}
	one := []models.TrackPoint{{Altitude: alt(100)}}
	if g := AltitudeGainMeters(one); g != 0 {
		t.Errorf("Expected 0 for a single point, got %v", g)
	}
}

func TestAltitudeGainOnlyCountsClimbs(t *testing.T) {
	points := []models.TrackPoint{
		{Altitude: alt(100)},
		{Altitude: alt(150)}, // +50 ft
		{Altitude: alt(120)}, // descent, ignored
		{Altitude: alt(180)}, // +60 ft
	}

	got := AltitudeGainMeters(points)
	expected := 110 * FeetToMeters
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %.4f m, got %.4f m", expected, got)
	}
}

func TestAltitudeGainSentinelBreaksChain(t *testing.T) {
	// [100, nil, 200]: the missing reading breaks the chain, so 200 is
	// never compared against 100
	points := []models.TrackPoint{
		{Altitude: alt(100)},
		{Altitude: nil},
		{Altitude: alt(200)},
	}

	if got := AltitudeGainMeters(points); got != 0 {
		t.Errorf("Expected 0 gain across a gap, got %v", got)
	}
}

func TestAltitudeGainResumesAfterGap(t *testing.T) {
	points := []models.TrackPoint{
		{Altitude: alt(100)},
		{Altitude: nil},
		{Altitude: alt(200)},
		{Altitude: alt(250)}, // +50 ft, both readings valid
	}

	got := AltitudeGainMeters(points)
	expected := 50 * FeetToMeters
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %.4f m, got %.4f m", expected, got)
	}
}

func TestHasInvalidGap(t *testing.T) {
	cases := []struct {
		name  string
		times []string
		want  bool
	}{
		{"no gap", []string{"2008-01-01 00:00:00", "2008-01-01 00:04:59"}, false},
		{"exactly five minutes", []string{"2008-01-01 00:00:00", "2008-01-01 00:05:00"}, true},
		{"large gap", []string{"2008-01-01 00:00:00", "2008-01-01 02:00:00"}, true},
		{"single point", []string{"2008-01-01 00:00:00"}, false},
		{"empty", nil, false},
	}

	for _, tc := range cases {
		var points []models.TrackPoint
		for _, ts := range tc.times {
			points = append(points, models.TrackPoint{DateTime: ts})
		}
		if got := HasInvalidGap(points); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestAnyInside(t *testing.T) {
	fence := spatial.NewGeofence(39.912, 116.393, 39.920, 116.401)

	inside := []models.TrackPoint{
		{Latitude: 10, Longitude: 10},
		{Latitude: 39.916, Longitude: 116.397},
	}
	if !AnyInside(inside, fence) {
		t.Error("Expected a hit for a point inside the box")
	}

	outside := []models.TrackPoint{
		{Latitude: 39.911, Longitude: 116.397},
		{Latitude: 39.916, Longitude: 116.402},
	}
	if AnyInside(outside, fence) {
		t.Error("Expected no hit for points outside the box")
	}

	// Bounds are inclusive
	edge := []models.TrackPoint{{Latitude: 39.912, Longitude: 116.393}}
	if !AnyInside(edge, fence) {
		t.Error("Expected a hit on the boundary itself")
	}
}
