package geolife

import (
	"strconv"
	"strings"
)

// AltitudeSentinel marks a missing altitude reading in the source format.
// Any raw altitude at or below it is normalized to nil at parse time.
const AltitudeSentinel = -777

// RawPoint is one parsed trajectory record, not yet assigned to an activity
type RawPoint struct {
	Lat      float64
	Lon      float64
	Altitude *int // feet; nil when the source carried the sentinel
	DateDays float64
	DateTime string // "2006-01-02 15:04:05"
}

// ParseTrackPointLine parses one data line of a .plt trajectory file.
//
// The source format is comma-separated: latitude, longitude, an unused
// flag, altitude in feet, a serial day count, date and time strings.
// Returns a *ParseError when fewer than 7 fields are present or a numeric
// field does not parse.
func ParseTrackPointLine(line string) (RawPoint, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 7 {
		return RawPoint{}, &ParseError{Line: line, Reason: "expected 7 comma-separated fields"}
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return RawPoint{}, &ParseError{Line: line, Reason: "invalid latitude"}
	}

	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return RawPoint{}, &ParseError{Line: line, Reason: "invalid longitude"}
	}

	// parts[2] is a flag column set to 0 for the whole dataset; ignored.

	// Altitude is written as a float in the source but carries whole feet.
	altFloat, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return RawPoint{}, &ParseError{Line: line, Reason: "invalid altitude"}
	}

	dateDays, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return RawPoint{}, &ParseError{Line: line, Reason: "invalid date serial"}
	}

	dateStr := strings.TrimSpace(parts[5])
	timeStr := strings.TrimSpace(parts[6])

	p := RawPoint{
		Lat:      lat,
		Lon:      lon,
		DateDays: dateDays,
		DateTime: dateStr + " " + timeStr,
	}

	if alt := int(altFloat); alt > AltitudeSentinel {
		p.Altitude = &alt
	}

	return p, nil
}
