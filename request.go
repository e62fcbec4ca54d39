package odata

import (
	"github.com/adamwoolhether/odata/query"
)

// Re-exported option enumerations, so callers rarely need to import query.
type (
	Direction   = query.Direction
	Comparison  = query.Comparison
	InlineCount = query.InlineCount
	Format      = query.Format
)

const (
	Ascending  = query.Ascending
	Descending = query.Descending

	Equal          = query.Equal
	NotEqual       = query.NotEqual
	GreaterThan    = query.GreaterThan
	GreaterOrEqual = query.GreaterOrEqual
	LessThan       = query.LessThan
	LessOrEqual    = query.LessOrEqual

	InlineCountNone     = query.InlineCountNone
	InlineCountAllPages = query.InlineCountAllPages

	FormatJSON = query.FormatJSON
	FormatXML  = query.FormatXML
)

// GetRequest requests a single resource by id:
// <base path>/<resource type>(<id>).
//
// Fetch it with [Fetch].
type GetRequest struct {
	path query.Path
}

// NewGetRequest builds a request for the resource of the given type and id.
func NewGetRequest(resourceType string, id uint64) GetRequest {
	return GetRequest{path: query.NewPath(resourceType).WithID(id)}
}

// Format changes the format of the returned data. [Fetch] always
// overrides it with [FormatJSON].
func (r GetRequest) Format(f Format) GetRequest {
	r.path = r.path.Format(f)
	return r
}

// Expand includes the given relations of the resource in the response,
// saving a separate lookup per relation. Repeated calls accumulate.
func (r GetRequest) Expand(fields ...string) GetRequest {
	r.path = r.path.Expand(fields...)
	return r
}

// Path returns the request as a path without a base path.
func (r GetRequest) Path() query.Path {
	return r.path
}

// ListRequest requests a collection of resources.
//
// Fetch it with [FetchPaged].
type ListRequest struct {
	path query.Path
}

// NewListRequest builds a request for the collection of the given type.
func NewListRequest(resourceType string) ListRequest {
	return ListRequest{path: query.NewPath(resourceType)}
}

// Format changes the format of the returned data. [FetchPaged] always
// overrides it with [FormatJSON].
func (r ListRequest) Format(f Format) ListRequest {
	r.path = r.path.Format(f)
	return r
}

// OrderBy orders the returned resources by field. Pass [Ascending] for the
// default direction.
func (r ListRequest) OrderBy(field string, dir Direction) ListRequest {
	r.path = r.path.OrderBy(field, dir)
	return r
}

// Top only retrieves the first n items.
func (r ListRequest) Top(n uint32) ListRequest {
	r.path = r.path.Top(n)
	return r
}

// Skip skips the first n items.
func (r ListRequest) Skip(n uint32) ListRequest {
	r.path = r.path.Skip(n)
	return r
}

// InlineCount asks the server to include the total number of matching
// items in the page metadata. Omitting it implies [InlineCountNone].
func (r ListRequest) InlineCount(mode InlineCount) ListRequest {
	r.path = r.path.InlineCount(mode)
	return r
}

// Filter restricts the results to items where field compares to value.
// A request carries a single filter: a later call replaces an earlier one.
func (r ListRequest) Filter(field string, cmp Comparison, value string) ListRequest {
	r.path = r.path.Filter(field, cmp, value)
	return r
}

// Expand includes the given relations of each resource in the response.
// Repeated calls accumulate.
func (r ListRequest) Expand(fields ...string) ListRequest {
	r.path = r.path.Expand(fields...)
	return r
}

// Path returns the request as a path without a base path.
func (r ListRequest) Path() query.Path {
	return r.path
}
