package odata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// Page wraps one page of a collection response.
type Page[T any] struct {
	// Value holds the items in response order.
	Value []T `json:"value"`
	// Count is the total number of matching items, present when the request
	// asked for InlineCountAllPages.
	Count *string `json:"odata.count,omitempty"`
	// NextLink is the URI of the following page, if there is one.
	NextLink *string `json:"odata.nextLink,omitempty"`
	Metadata *string `json:"odata.metadata,omitempty"`
}

// HasNext reports whether the server announced a following page.
func (p Page[T]) HasNext() bool {
	return p.NextLink != nil && *p.NextLink != ""
}

// decode reads the whole body of resp, closes it and parses it as T.
func decode[T any](resp *http.Response) (T, error) {
	var v T

	text, err := readText(resp)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, &ParseError{Text: text, Err: err}
	}

	return v, nil
}

func decodePage[T any](resp *http.Response) (Page[T], error) {
	var page Page[T]

	text, err := readText(resp)
	if err != nil {
		return page, err
	}

	if err := json.Unmarshal([]byte(text), &page); err != nil {
		return Page[T]{}, &ParseError{Text: text, Err: err}
	}

	if page.Value == nil {
		return Page[T]{}, &ParseError{Text: text, Err: ErrMissingValue}
	}

	return page, nil
}

// readText buffers the full body and checks that it is UTF-8.
func readText(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %w", ErrIO, err)
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidText, len(b))
	}

	return string(b), nil
}
