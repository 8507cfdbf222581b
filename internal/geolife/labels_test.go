package geolife

import (
	"strings"
	"testing"
)

func TestBuildLabelIndex(t *testing.T) {
	src := "Start Time\tEnd Time\tTransportation Mode\n" +
		"2008/01/01 00:00:00\t2008/01/01 00:05:00\twalk\n" +
		"2008/01/02 10:00:00\t2008/01/02 10:30:00\tbus\n"

	index, err := BuildLabelIndex(strings.NewReader(src))
	if err != nil {
		t.Fatalf("BuildLabelIndex failed: %v", err)
	}

	if len(index) != 2 {
		t.Fatalf("Expected 2 intervals, got %d", len(index))
	}

	// Slashes in timestamps must be normalized to dashes
	mode, ok := index[LabelKey{Start: "2008-01-01 00:00:00", End: "2008-01-01 00:05:00"}]
	if !ok || mode != "walk" {
		t.Errorf("Expected walk interval under normalized key, got %q (found=%v)", mode, ok)
	}
}

func TestBuildLabelIndexSkipsMalformedLines(t *testing.T) {
	src := "Start Time\tEnd Time\tTransportation Mode\n" +
		"2008/01/01 00:00:00\t2008/01/01 00:05:00\n" + // 2 fields
		"not a label line at all\n" +
		"2008/01/01 00:00:00\t2008/01/01 00:05:00\twalk\textra\n" + // 4 fields
		"2008/01/02 10:00:00\t2008/01/02 10:30:00\tbus\n"

	index, err := BuildLabelIndex(strings.NewReader(src))
	if err != nil {
		t.Fatalf("BuildLabelIndex failed: %v", err)
	}
	if len(index) != 1 {
		t.Errorf("Expected only the well-formed line to survive, got %d intervals", len(index))
	}
}

func TestBuildLabelIndexNoSource(t *testing.T) {
	index, err := BuildLabelIndex(nil)
	if err != nil {
		t.Fatalf("BuildLabelIndex(nil) failed: %v", err)
	}
	if len(index) != 0 {
		t.Errorf("Expected empty index for missing source, got %d entries", len(index))
	}
}

func TestBuildLabelIndexHeaderOnly(t *testing.T) {
	index, err := BuildLabelIndex(strings.NewReader("Start Time\tEnd Time\tTransportation Mode\n"))
	if err != nil {
		t.Fatalf("BuildLabelIndex failed: %v", err)
	}
	if len(index) != 0 {
		t.Errorf("Expected empty index for header-only source, got %d entries", len(index))
	}
}
