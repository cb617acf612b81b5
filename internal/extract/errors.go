package extract

import "fmt"

// ExtractionError reports a file that could not be turned into usable text:
// unsupported, unreadable, too large, or with too little text to analyze.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func extractionErr(reason string, err error) *ExtractionError {
	return &ExtractionError{Reason: reason, Err: err}
}
