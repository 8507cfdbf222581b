package spatial

import "testing"

func TestGeofenceContains(t *testing.T) {
	fence := NewGeofence(39.912, 116.393, 39.920, 116.401)

	cases := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"center", 39.916, 116.397, true},
		{"south-west corner", 39.912, 116.393, true},
		{"north-east corner", 39.920, 116.401, true},
		{"just south", 39.9119, 116.397, false},
		{"just east", 39.916, 116.4011, false},
		{"far away", 31.23, 121.47, false},
	}

	for _, tc := range cases {
		if got := fence.Contains(tc.lat, tc.lon); got != tc.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tc.name, tc.lat, tc.lon, got, tc.want)
		}
	}
}
