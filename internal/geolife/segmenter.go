package geolife

// Segment is one sealed activity produced by the segmenter: a contiguous
// run of points with its time span and, when a label matched, its mode.
type Segment struct {
	Mode   string // "" when no label matched
	Start  string
	End    string
	Points []RawPoint
}

// Segmenter walks the chronologically ordered point stream of a single
// trajectory file and cuts it into activities.
//
// It keeps one open activity at a time: each fed point extends the open
// span, and whenever the (start, end) span exactly equals a labeled
// interval the activity is sealed with that mode and a fresh one begins.
// The point that triggered the match belongs to the sealed activity.
// Not safe for concurrent use; feed one file's stream from one goroutine.
type Segmenter struct {
	labels LabelIndex

	start  string
	end    string
	points []RawPoint
	sealed []Segment
}

// NewSegmenter creates a segmenter for one trajectory file of one user
func NewSegmenter(labels LabelIndex) *Segmenter {
	return &Segmenter{labels: labels}
}

// Feed appends the next point of the stream to the open activity and
// seals it if the open span hits a labeled interval.
func (s *Segmenter) Feed(p RawPoint) {
	s.points = append(s.points, p)
	if s.start == "" {
		s.start = p.DateTime
	}
	s.end = p.DateTime

	mode, ok := s.labels[LabelKey{Start: s.start, End: s.end}]
	if !ok {
		return
	}

	s.sealed = append(s.sealed, Segment{
		Mode:   mode,
		Start:  s.start,
		End:    s.end,
		Points: s.points,
	})
	s.start, s.end = "", ""
	s.points = nil
}

// Finish flushes the remaining open activity, if any, as an unlabeled
// segment and returns all sealed segments in stream order. The segmenter
// must not be fed after Finish.
func (s *Segmenter) Finish() []Segment {
	if len(s.points) > 0 {
		s.sealed = append(s.sealed, Segment{
			Start:  s.start,
			End:    s.end,
			Points: s.points,
		})
		s.start, s.end = "", ""
		s.points = nil
	}
	return s.sealed
}
