package geolife

import (
	"fmt"
	"testing"
)

func pointAt(ts string) RawPoint {
	return RawPoint{Lat: 39.9, Lon: 116.3, DateTime: ts}
}

func TestSegmenterLabelMatch(t *testing.T) {
	labels := LabelIndex{
		{Start: "2008-01-01 00:00:00", End: "2008-01-01 00:05:00"}: "walk",
	}

	s := NewSegmenter(labels)
	s.Feed(pointAt("2008-01-01 00:00:00"))
	s.Feed(pointAt("2008-01-01 00:05:00"))

	segments := s.Finish()
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}

	seg := segments[0]
	if seg.Mode != "walk" {
		t.Errorf("Expected mode walk, got %q", seg.Mode)
	}
	if seg.Start != "2008-01-01 00:00:00" || seg.End != "2008-01-01 00:05:00" {
		t.Errorf("Unexpected span (%q, %q)", seg.Start, seg.End)
	}
	if len(seg.Points) != 2 {
		t.Errorf("Expected 2 points in the sealed segment, got %d", len(seg.Points))
	}
}

func TestSegmenterTrailingPointsFormUnlabeledSegment(t *testing.T) {
	labels := LabelIndex{
		{Start: "2008-01-01 00:00:00", End: "2008-01-01 00:05:00"}: "walk",
	}

	s := NewSegmenter(labels)
	s.Feed(pointAt("2008-01-01 00:00:00"))
	s.Feed(pointAt("2008-01-01 00:05:00"))
	// Trailing points after the label's end timestamp
	s.Feed(pointAt("2008-01-01 00:06:00"))
	s.Feed(pointAt("2008-01-01 00:07:00"))

	segments := s.Finish()
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}

	if segments[0].Mode != "walk" {
		t.Errorf("First segment should be labeled walk, got %q", segments[0].Mode)
	}
	if segments[1].Mode != "" {
		t.Errorf("Trailing segment should be unlabeled, got %q", segments[1].Mode)
	}
	if segments[1].Start != "2008-01-01 00:06:00" || segments[1].End != "2008-01-01 00:07:00" {
		t.Errorf("Unexpected trailing span (%q, %q)", segments[1].Start, segments[1].End)
	}
	// The matching point belongs to the sealed segment, not the next one
	if len(segments[0].Points) != 2 || len(segments[1].Points) != 2 {
		t.Errorf("Points split 2/2 expected, got %d/%d", len(segments[0].Points), len(segments[1].Points))
	}
}

func TestSegmenterExactMatchOnly(t *testing.T) {
	// Spans are literal key matches, not range containment: a point
	// sequence overshooting the labeled interval stays unlabeled.
	labels := LabelIndex{
		{Start: "2008-01-01 00:01:00", End: "2008-01-01 00:05:00"}: "walk",
	}

	s := NewSegmenter(labels)
	s.Feed(pointAt("2008-01-01 00:00:00")) // start lands before the label
	s.Feed(pointAt("2008-01-01 00:05:00"))

	segments := s.Finish()
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Mode != "" {
		t.Errorf("Expected unlabeled segment, got mode %q", segments[0].Mode)
	}
}

func TestSegmenterEmptyStream(t *testing.T) {
	s := NewSegmenter(LabelIndex{})
	if segments := s.Finish(); len(segments) != 0 {
		t.Errorf("Expected no segments from an empty stream, got %d", len(segments))
	}
}

func TestSegmenterMultipleLabelMatches(t *testing.T) {
	labels := LabelIndex{
		{Start: "2008-01-01 00:00:00", End: "2008-01-01 00:01:00"}: "walk",
		{Start: "2008-01-01 00:02:00", End: "2008-01-01 00:03:00"}: "bus",
	}

	s := NewSegmenter(labels)
	for i := 0; i < 4; i++ {
		s.Feed(pointAt(fmt.Sprintf("2008-01-01 00:0%d:00", i)))
	}

	segments := s.Finish()
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	if segments[0].Mode != "walk" || segments[1].Mode != "bus" {
		t.Errorf("Expected walk then bus, got %q then %q", segments[0].Mode, segments[1].Mode)
	}
}
