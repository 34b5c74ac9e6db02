package catalog

import "fmt"

// TransportError reports a network or HTTP-level failure while talking to
// the catalog service. The client makes a single attempt per call; retry
// policy belongs to the caller (the crawler applies a bounded retry).
//
// StatusCode is zero when the request never completed (DNS failure,
// timeout, connection reset). Otherwise it holds the non-2xx status the
// service returned.
type TransportError struct {
	// Op names the client operation that failed ("list", "detail", "sets").
	Op string

	// URL is the request URL.
	URL string

	// StatusCode is the HTTP status code, or zero for network failures.
	StatusCode int

	// Err is the underlying error, nil for plain non-2xx responses.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog %s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("catalog %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *TransportError) Unwrap() error {
	return e.Err
}
