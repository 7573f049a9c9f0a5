package pipeline

import "fmt"

// InputError is a malformed request rejected before any I/O is performed
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// SourceFetchError means the source document itself could not be retrieved.
// It aborts the whole run; no partial report is produced.
type SourceFetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *SourceFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch document %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch document %s: %v", e.URL, e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }
