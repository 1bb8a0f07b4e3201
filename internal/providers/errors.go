package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no provider is wired for a capability.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError captures a failed upstream fetch: network failure, timeout,
// unexpected status, or a malformed JSON body. Callers treat it as "no data
// this cycle" and skip the affected sub-step.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
