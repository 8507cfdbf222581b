package geolife

import "fmt"

// ParseError reports a malformed trajectory data line. The ingestor treats
// it as fatal for the enclosing file only: the file is logged and skipped,
// the run continues with the next file.
type ParseError struct {
	Line   string // the raw line that failed to parse
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed trajectory line %q: %s", e.Line, e.Reason)
}
