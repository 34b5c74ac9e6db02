package crawler

import "errors"

// Crawler errors.
var (
	// ErrSetNotFound is returned when a requested set code matches no set
	// in the remote catalog. This is a usage error and aborts the crawl
	// before any paging begins.
	ErrSetNotFound = errors.New("no catalog set matches the requested set code")

	// ErrNoNumbers is returned when a by-identifier crawl is requested
	// with an empty identifier list.
	ErrNoNumbers = errors.New("no card numbers provided")
)
