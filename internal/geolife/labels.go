package geolife

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LabelKey is the exact (start, end) span of one labeled interval.
// Lookups are literal string matches on normalized timestamps, not range
// containment: a point sequence whose endpoints do not land exactly on a
// labeled boundary stays unlabeled.
type LabelKey struct {
	Start string
	End   string
}

// LabelIndex maps labeled spans to transportation modes for one user
type LabelIndex map[LabelKey]string

// BuildLabelIndex reads a labels source (tab-separated start, end, mode
// with a single header line) and builds the user's label index.
//
// Timestamps are normalized by replacing "/" with "-". Lines without
// exactly 3 fields are skipped silently. A nil reader yields an empty
// index, which is the has_labels=false case.
func BuildLabelIndex(r io.Reader) (LabelIndex, error) {
	index := make(LabelIndex)
	if r == nil {
		return index, nil
	}

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}

		parts := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(parts) != 3 {
			continue
		}

		start := strings.ReplaceAll(parts[0], "/", "-")
		end := strings.ReplaceAll(parts[1], "/", "-")
		index[LabelKey{Start: start, End: end}] = parts[2]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	return index, nil
}
