package events

import "fmt"

// TransportError means no HTTP response was received: DNS failure,
// refused connection, timeout or cancellation.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError means a response arrived but was unusable: a non-2xx
// status or a body that is not the expected JSON. StatusCode is the
// received status in both cases.
type ResponseError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ResponseError) Error() string {
	if e.StatusCode < 200 || e.StatusCode > 299 {
		return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: decode response: %v", e.URL, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }
