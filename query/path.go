package query

import (
	"fmt"
	"net/url"
	"strconv"
)

// Path describes the target of a single request: an optional base path,
// a resource type, an optional numeric id and a set of query options.
//
// Like Options, Path is a value: setters return an updated copy.
type Path struct {
	basePath     string
	resourceType string
	id           uint64
	hasID        bool
	opts         Options
}

// NewPath starts a Path for the given resource type (entity set) with an
// empty base path.
func NewPath(resourceType string) Path {
	return Path{resourceType: resourceType}
}

// WithID addresses a single resource by its numeric id.
func (p Path) WithID(id uint64) Path {
	p.id = id
	p.hasID = true
	return p
}

// WithBasePath sets the prefix placed before the resource type, such as "/api".
// It is written verbatim.
func (p Path) WithBasePath(basePath string) Path {
	p.basePath = basePath
	return p
}

// WithOptions replaces the query options.
func (p Path) WithOptions(opts Options) Path {
	p.opts = opts
	return p
}

// ResourceType returns the resource type the path addresses.
func (p Path) ResourceType() string { return p.resourceType }

// BasePath returns the configured base path.
func (p Path) BasePath() string { return p.basePath }

// ID returns the resource id, if one is set.
func (p Path) ID() (uint64, bool) { return p.id, p.hasID }

// Options returns the query options.
func (p Path) Options() Options { return p.opts }

// OrderBy sets $orderby, replacing any earlier ordering.
func (p Path) OrderBy(field string, dir Direction) Path {
	p.opts = p.opts.OrderBy(field, dir)
	return p
}

// Top limits the result to at most n items.
func (p Path) Top(n uint32) Path {
	p.opts = p.opts.Top(n)
	return p
}

// Skip skips the first n items.
func (p Path) Skip(n uint32) Path {
	p.opts = p.opts.Skip(n)
	return p
}

// InlineCount sets $inlinecount.
func (p Path) InlineCount(mode InlineCount) Path {
	p.opts = p.opts.InlineCount(mode)
	return p
}

// Filter sets $filter, replacing any earlier filter.
func (p Path) Filter(field string, cmp Comparison, value string) Path {
	p.opts = p.opts.Filter(field, cmp, value)
	return p
}

// Expand appends fields to $expand. See Options.Expand.
func (p Path) Expand(fields ...string) Path {
	p.opts = p.opts.Expand(fields...)
	return p
}

// Format sets $format.
func (p Path) Format(f Format) Path {
	p.opts = p.opts.Format(f)
	return p
}

// Build renders the path-and-query:
//
//	<base_path>/<resource_type>[(<id>)]?<options>
//
// The '?' is always written, even when no options are set. Build fails
// with ErrInvalidURI only if the result cannot be parsed as a request
// URI, which can only happen through an unencodable base path.
func (p Path) Build() (string, error) {
	var id string
	if p.hasID {
		id = "(" + escape(strconv.FormatUint(p.id, 10)) + ")"
	}

	pq := p.basePath + "/" + escape(p.resourceType) + id + "?" + p.opts.Encode()

	if _, err := url.ParseRequestURI(pq); err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidURI, pq, err)
	}

	return pq, nil
}

// String returns the built path-and-query, or an empty string if it is invalid.
func (p Path) String() string {
	pq, err := p.Build()
	if err != nil {
		return ""
	}
	return pq
}
