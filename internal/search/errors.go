package search

import (
	"errors"
	"fmt"
)

// ErrSearchFailed is returned for transport errors, non-success statuses and
// undecodable response bodies.
var ErrSearchFailed = errors.New("search failed")

func searchFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSearchFailed, fmt.Sprintf(format, args...))
}
