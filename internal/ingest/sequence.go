package ingest

// Sequence hands out monotonically increasing identifiers. One sequence
// per id space is created for each ingestion run, so runs are isolated
// and tests never share counter state.
type Sequence struct {
	next int64
}

// NewSequence creates a sequence starting at 1
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next identifier
func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}
