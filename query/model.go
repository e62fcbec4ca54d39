package query

import (
	"errors"
	"strconv"
)

// ErrInvalidURI is returned by Path.Build when the assembled
// path-and-query is not a valid request URI.
var ErrInvalidURI = errors.New("invalid URI")

// Direction is the sort order used by Options.OrderBy. The zero value is
// Ascending.
type Direction int

const (
	// Ascending lists results from smallest to largest.
	Ascending Direction = iota
	// Descending lists results from largest to smallest.
	Descending
)

// String returns the OData keyword for d.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Comparison is the operator of a filter expression.
type Comparison int

// Filter comparison operators.
const (
	Equal          Comparison = iota // eq
	NotEqual                         // ne
	GreaterThan                      // gt
	GreaterOrEqual                   // ge
	LessThan                         // lt
	LessOrEqual                      // le
)

// String returns the OData operator for c.
func (c Comparison) String() string {
	switch c {
	case Equal:
		return "eq"
	case NotEqual:
		return "ne"
	case GreaterThan:
		return "gt"
	case GreaterOrEqual:
		return "ge"
	case LessThan:
		return "lt"
	case LessOrEqual:
		return "le"
	default:
		return "Comparison(" + strconv.Itoa(int(c)) + ")"
	}
}

// InlineCount controls whether a collection response includes the total
// number of matching items. Omitting the option implies InlineCountNone.
type InlineCount int

const (
	// InlineCountNone leaves the total count out of the response.
	InlineCountNone InlineCount = iota
	// InlineCountAllPages includes the total count across all pages.
	InlineCountAllPages
)

// String returns the $inlinecount value for i.
func (i InlineCount) String() string {
	switch i {
	case InlineCountNone:
		return "none"
	case InlineCountAllPages:
		return "allpages"
	default:
		return "InlineCount(" + strconv.Itoa(int(i)) + ")"
	}
}

// Format is the representation requested for the response body.
type Format int

const (
	// FormatJSON requests a JSON body.
	FormatJSON Format = iota
	// FormatXML requests an Atom/XML body.
	FormatXML
)

// String returns the $format value for f.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}
