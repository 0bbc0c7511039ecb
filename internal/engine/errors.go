package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when the search text is empty or whitespace-only.
// It is rejected before any network call.
var ErrEmptyQuery = errors.New("search query is empty")

// TransportError reports a failed page fetch: a network error or a
// non-success HTTP status. It is surfaced to the caller as-is and never
// retried internally.
type TransportError struct {
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
