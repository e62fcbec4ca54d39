package odata

import (
	"errors"
	"fmt"

	"github.com/adamwoolhether/odata/query"
)

var (
	// ErrInvalidURI reports a path or authority that could not be assembled
	// into a valid URI. It indicates a programming error, not a runtime
	// condition.
	ErrInvalidURI = query.ErrInvalidURI
	// ErrTransport wraps failures of the underlying HTTP call.
	ErrTransport = errors.New("transport error")
	// ErrIO wraps failures while reading the response body.
	ErrIO = errors.New("io error")
	// ErrInvalidText reports a response body that is not valid UTF-8.
	ErrInvalidText = errors.New("response body is not valid UTF-8")
	// ErrParse is matched by every [ParseError].
	ErrParse = errors.New("parse error")
	// ErrMissingValue is the cause of a [ParseError] for a collection
	// response without a "value" array.
	ErrMissingValue = errors.New(`missing "value" array`)
)

// ParseError is returned when a response body is valid text but not the
// expected JSON. Text holds the complete body for diagnosis.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrParse, e.Err)
}

// Unwrap exposes both ErrParse and the decoder's error to [errors.Is] and
// [errors.As].
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
