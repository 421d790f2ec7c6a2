package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	errorMarkerPrefix = "<error: "
	errorMarkerSuffix = ">"
)

var (
	ErrOutOfRange  = errors.New("index out of range")
	ErrInvalidUTF8 = errors.New("response body is not valid utf-8")
)

// FetchError reports a failed GET: transport, malformed URL, or an undecodable body.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrorMarker is the value stored in place of a body when a fetch fails.
func ErrorMarker(err error) string {
	return errorMarkerPrefix + err.Error() + errorMarkerSuffix
}

// IsErrorMarker reports whether value has the single-line shape ErrorMarker produces.
func IsErrorMarker(value string) bool {
	return strings.HasPrefix(value, errorMarkerPrefix) &&
		strings.HasSuffix(value, errorMarkerSuffix) &&
		!strings.Contains(value, "\n")
}
