package ingestion

import "fmt"

// ExtractionError reports that no usable text could be pulled from a
// candidate file. Candidates carrying this error are excluded from ranking
// rather than scored as zero.
type ExtractionError struct {
	File  string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not extract text from %s: %v", e.File, e.Cause)
	}
	return fmt.Sprintf("could not extract text from %s", e.File)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
