package query

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Key identifies one of the supported OData system query options.
type Key int

const (
	KeyOrderBy Key = iota
	KeyTop
	KeySkip
	KeyInlineCount
	KeyFilter
	KeyExpand
	KeyFormat

	numKeys
)

var keyNames = [numKeys]string{
	KeyOrderBy:     "orderby",
	KeyTop:         "top",
	KeySkip:        "skip",
	KeyInlineCount: "inlinecount",
	KeyFilter:      "filter",
	KeyExpand:      "expand",
	KeyFormat:      "format",
}

// sortedKeys holds every Key ordered by its name, which is the
// serialization order of Options.Encode.
var sortedKeys = func() []Key {
	keys := make([]Key, 0, numKeys)
	for k := range numKeys {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(keyNames[a], keyNames[b])
	})
	return keys
}()

// String returns the option name without the leading '$'.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}
	return keyNames[k]
}

// Options is the set of query options attached to a request. The zero
// value is an empty set.
//
// Options has value semantics: every setter returns an updated copy and
// leaves the receiver untouched, so a partially built set can be reused
// as a template without aliasing. Values are percent-encoded when they
// are set; Encode only encodes the keys.
type Options struct {
	values [numKeys]string
	set    [numKeys]bool
}

// OrderBy sorts the results by field in the given direction.
func (o Options) OrderBy(field string, dir Direction) Options {
	return o.with(KeyOrderBy, escape(field+" "+dir.String()))
}

// Top limits the result to the first n items.
func (o Options) Top(n uint32) Options {
	return o.with(KeyTop, strconv.FormatUint(uint64(n), 10))
}

// Skip omits the first n items of the result.
func (o Options) Skip(n uint32) Options {
	return o.with(KeySkip, strconv.FormatUint(uint64(n), 10))
}

// InlineCount controls whether the response carries a total count.
func (o Options) InlineCount(mode InlineCount) Options {
	return o.with(KeyInlineCount, escape(mode.String()))
}

// Filter restricts the result to items where field compares to value.
// Only one filter expression is held: calling Filter again replaces the
// previous expression rather than combining with it.
func (o Options) Filter(field string, cmp Comparison, value string) Options {
	return o.with(KeyFilter, escape(field+" "+cmp.String()+" "+value))
}

// Expand requests inline expansion of the given relations. Successive
// calls append to the list in call order. Calling it without fields
// leaves o unchanged.
func (o Options) Expand(fields ...string) Options {
	if len(fields) == 0 {
		return o
	}

	encoded := make([]string, len(fields))
	for i, f := range fields {
		encoded[i] = escape(f)
	}
	joined := strings.Join(encoded, ",")

	if current, ok := o.Get(KeyExpand); ok {
		joined = current + "," + joined
	}

	return o.with(KeyExpand, joined)
}

// Format selects the representation of the response body.
func (o Options) Format(f Format) Options {
	return o.with(KeyFormat, f.String())
}

// Get returns the encoded value stored for k.
func (o Options) Get(k Key) (string, bool) {
	if k < 0 || k >= numKeys || !o.set[k] {
		return "", false
	}
	return o.values[k], true
}

// Len reports how many options are set.
func (o Options) Len() int {
	var n int
	for _, ok := range o.set {
		if ok {
			n++
		}
	}
	return n
}

// Encode serializes the set into its canonical form: "$key=value" pairs,
// sorted by key and joined with '&'. Identical sets always encode to
// identical strings.
func (o Options) Encode() string {
	var b strings.Builder
	for _, k := range sortedKeys {
		if !o.set[k] {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteByte('$')
		b.WriteString(escape(keyNames[k]))
		b.WriteByte('=')
		b.WriteString(o.values[k])
	}
	return b.String()
}

func (o Options) with(k Key, value string) Options {
	o.values[k] = value
	o.set[k] = true
	return o
}

// escape percent-encodes every byte outside the unreserved set, writing
// spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
