package geolife

import (
	"testing"
)

func TestParseTrackPointLine(t *testing.T) {
	line := "39.984702,116.318417,0,492,39744.1201851852,2008-10-23,02:53:04"

	p, err := ParseTrackPointLine(line)
	if err != nil {
		t.Fatalf("ParseTrackPointLine failed: %v", err)
	}

	if p.Lat != 39.984702 {
		t.Errorf("Expected latitude 39.984702, got %v", p.Lat)
	}
	if p.Lon != 116.318417 {
		t.Errorf("Expected longitude 116.318417, got %v", p.Lon)
	}
	if p.Altitude == nil || *p.Altitude != 492 {
		t.Errorf("Expected altitude 492, got %v", p.Altitude)
	}
	if p.DateDays != 39744.1201851852 {
		t.Errorf("Expected date serial 39744.1201851852, got %v", p.DateDays)
	}
	if p.DateTime != "2008-10-23 02:53:04" {
		t.Errorf("Expected timestamp %q, got %q", "2008-10-23 02:53:04", p.DateTime)
	}
}

func TestParseTrackPointLineSentinelAltitude(t *testing.T) {
	// Altitudes at or below -777 feet mean "no reading" and must never
	// survive as numbers
	for _, raw := range []string{"-777", "-777.0", "-800", "-1000.5"} {
		line := "39.9,116.3,0," + raw + ",39744.0,2008-10-23,02:53:04"
		p, err := ParseTrackPointLine(line)
		if err != nil {
			t.Fatalf("ParseTrackPointLine(%q altitude) failed: %v", raw, err)
		}
		if p.Altitude != nil {
			t.Errorf("Altitude %s should normalize to nil, got %d", raw, *p.Altitude)
		}
	}

	// -776 is a valid (if odd) reading
	p, err := ParseTrackPointLine("39.9,116.3,0,-776,39744.0,2008-10-23,02:53:04")
	if err != nil {
		t.Fatalf("ParseTrackPointLine failed: %v", err)
	}
	if p.Altitude == nil || *p.Altitude != -776 {
		t.Errorf("Expected altitude -776, got %v", p.Altitude)
	}
}

func TestParseTrackPointLineTruncatesAltitude(t *testing.T) {
	p, err := ParseTrackPointLine("39.9,116.3,0,13.9,39744.0,2008-10-23,02:53:04")
	if err != nil {
		t.Fatalf("ParseTrackPointLine failed: %v", err)
	}
	if p.Altitude == nil || *p.Altitude != 13 {
		t.Errorf("Expected altitude truncated to 13, got %v", p.Altitude)
	}
}

func TestParseTrackPointLineErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"too few fields", "39.9,116.3,0,492"},
		{"bad latitude", "abc,116.3,0,492,39744.0,2008-10-23,02:53:04"},
		{"bad longitude", "39.9,abc,0,492,39744.0,2008-10-23,02:53:04"},
		{"bad altitude", "39.9,116.3,0,xyz,39744.0,2008-10-23,02:53:04"},
		{"bad date serial", "39.9,116.3,0,492,xyz,2008-10-23,02:53:04"},
		{"empty line", ""},
	}

	for _, tc := range cases {
		_, err := ParseTrackPointLine(tc.line)
		if err == nil {
			t.Errorf("%s: expected a parse error", tc.name)
			continue
		}
		if _, ok := err.(*ParseError); !ok {
			t.Errorf("%s: expected *ParseError, got %T", tc.name, err)
		}
	}
}
