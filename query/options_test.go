package query_test

import (
	"strings"
	"testing"

	"github.com/adamwoolhether/odata/query"
	"github.com/google/go-cmp/cmp"
)

func TestOptions_Encode(t *testing.T) {
	testCases := []struct {
		name string
		opts query.Options
		exp  string
	}{
		{
			name: "empty",
			opts: query.Options{},
			exp:  "",
		},
		{
			name: "top skip orderby",
			opts: query.Options{}.Top(2).Skip(3).OrderBy("date", query.Ascending),
			exp:  "$orderby=date%20asc&$skip=3&$top=2",
		},
		{
			name: "descending",
			opts: query.Options{}.OrderBy("date", query.Descending),
			exp:  "$orderby=date%20desc",
		},
		{
			name: "zero direction is ascending",
			opts: query.Options{}.OrderBy("id", query.Direction(0)),
			exp:  "$orderby=id%20asc",
		},
		{
			name: "inline count",
			opts: query.Options{}.InlineCount(query.InlineCountAllPages),
			exp:  "$inlinecount=allpages",
		},
		{
			name: "inline count none",
			opts: query.Options{}.InlineCount(query.InlineCountNone),
			exp:  "$inlinecount=none",
		},
		{
			name: "format xml",
			opts: query.Options{}.Format(query.FormatXML),
			exp:  "$format=xml",
		},
		{
			name: "filter with special characters",
			opts: query.Options{}.Filter("titel", query.Equal, "'a&b=c'"),
			exp:  "$filter=titel%20eq%20%27a%26b%3Dc%27",
		},
		{
			name: "expand escapes each field but keeps separators",
			opts: query.Options{}.Expand("a,b", "DokumentAktør"),
			exp:  "$expand=a%2Cb,DokumentAkt%C3%B8r",
		},
		{
			name: "all options",
			opts: query.Options{}.
				Format(query.FormatJSON).
				Top(10).
				Skip(20).
				InlineCount(query.InlineCountAllPages).
				Filter("id", query.GreaterOrEqual, "5").
				Expand("Aktør").
				OrderBy("opdateringsdato", query.Descending),
			exp: "$expand=Akt%C3%B8r&$filter=id%20ge%205&$format=json&$inlinecount=allpages&$orderby=opdateringsdato%20desc&$skip=20&$top=10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.exp, tc.opts.Encode()); diff != "" {
				t.Errorf("unexpected encoding (-exp +got):\n%s", diff)
			}
		})
	}
}

func TestOptions_Comparisons(t *testing.T) {
	testCases := []struct {
		cmp query.Comparison
		exp string
	}{
		{query.Equal, "$filter=x%20eq%201"},
		{query.NotEqual, "$filter=x%20ne%201"},
		{query.GreaterThan, "$filter=x%20gt%201"},
		{query.GreaterOrEqual, "$filter=x%20ge%201"},
		{query.LessThan, "$filter=x%20lt%201"},
		{query.LessOrEqual, "$filter=x%20le%201"},
	}

	for _, tc := range testCases {
		t.Run(tc.cmp.String(), func(t *testing.T) {
			got := query.Options{}.Filter("x", tc.cmp, "1").Encode()
			if got != tc.exp {
				t.Errorf("exp %q; got %q", tc.exp, got)
			}
		})
	}
}

func TestOptions_Deterministic(t *testing.T) {
	setters := []func(query.Options) query.Options{
		func(o query.Options) query.Options { return o.Top(5) },
		func(o query.Options) query.Options { return o.Skip(10) },
		func(o query.Options) query.Options { return o.OrderBy("date", query.Descending) },
		func(o query.Options) query.Options { return o.Filter("id", query.Equal, "24") },
		func(o query.Options) query.Options { return o.InlineCount(query.InlineCountAllPages) },
		func(o query.Options) query.Options { return o.Format(query.FormatJSON) },
	}

	var exp string
	for i, order := range permutations(len(setters)) {
		var opts query.Options
		for _, idx := range order {
			opts = setters[idx](opts)
		}

		got := opts.Encode()
		if i == 0 {
			exp = got
			continue
		}
		if got != exp {
			t.Fatalf("order %v: exp %q; got %q", order, exp, got)
		}
	}
}

func TestOptions_SortedKeys(t *testing.T) {
	opts := query.Options{}.
		Top(1).
		Skip(1).
		Format(query.FormatJSON).
		Expand("x").
		Filter("a", query.Equal, "b").
		InlineCount(query.InlineCountNone).
		OrderBy("a", query.Ascending)

	pairs := strings.Split(opts.Encode(), "&")
	if len(pairs) != 7 {
		t.Fatalf("exp 7 pairs; got %d: %v", len(pairs), pairs)
	}

	for i := 1; i < len(pairs); i++ {
		prev := strings.SplitN(pairs[i-1], "=", 2)[0]
		cur := strings.SplitN(pairs[i], "=", 2)[0]
		if prev >= cur {
			t.Errorf("keys not strictly ascending: %q before %q", prev, cur)
		}
	}
}

func TestOptions_ExpandAccumulates(t *testing.T) {
	testCases := []struct {
		name string
		opts query.Options
		exp  string
	}{
		{
			name: "pair then single",
			opts: query.Options{}.Expand("A", "B").Expand("C"),
			exp:  "$expand=A,B,C",
		},
		{
			name: "single then pair",
			opts: query.Options{}.Expand("C").Expand("A", "B"),
			exp:  "$expand=C,A,B",
		},
		{
			name: "interleaved with other options",
			opts: query.Options{}.Expand("A").Top(1).Expand("B"),
			exp:  "$expand=A,B&$top=1",
		},
		{
			name: "no fields",
			opts: query.Options{}.Expand(),
			exp:  "",
		},
		{
			name: "no fields after a field",
			opts: query.Options{}.Expand("A").Expand(),
			exp:  "$expand=A",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.opts.Encode(); got != tc.exp {
				t.Errorf("exp %q; got %q", tc.exp, got)
			}
		})
	}
}

func TestOptions_LastWriteWins(t *testing.T) {
	opts := query.Options{}.
		Filter("id", query.Equal, "24").
		Filter("name", query.NotEqual, "x").
		Top(1).
		Top(2)

	exp := "$filter=name%20ne%20x&$top=2"
	if got := opts.Encode(); got != exp {
		t.Errorf("exp %q; got %q", exp, got)
	}
}

func TestOptions_ValueSemantics(t *testing.T) {
	base := query.Options{}.Top(1).Expand("A")

	derived := base.Top(5).Expand("B")

	if got, exp := base.Encode(), "$expand=A&$top=1"; got != exp {
		t.Errorf("base mutated: exp %q; got %q", exp, got)
	}
	if got, exp := derived.Encode(), "$expand=A,B&$top=5"; got != exp {
		t.Errorf("exp %q; got %q", exp, got)
	}
}

func TestOptions_Get(t *testing.T) {
	opts := query.Options{}.Skip(7)

	v, ok := opts.Get(query.KeySkip)
	if !ok || v != "7" {
		t.Errorf("exp (7, true); got (%q, %v)", v, ok)
	}

	if _, ok := opts.Get(query.KeyTop); ok {
		t.Error("exp top to be unset")
	}

	if _, ok := opts.Get(query.Key(99)); ok {
		t.Error("exp unknown key to be unset")
	}

	if opts.Len() != 1 {
		t.Errorf("exp len 1; got %d", opts.Len())
	}
}

func TestKey_String(t *testing.T) {
	exp := map[query.Key]string{
		query.KeyOrderBy:     "orderby",
		query.KeyTop:         "top",
		query.KeySkip:        "skip",
		query.KeyInlineCount: "inlinecount",
		query.KeyFilter:      "filter",
		query.KeyExpand:      "expand",
		query.KeyFormat:      "format",
		query.Key(42):        "Key(42)",
	}

	for k, name := range exp {
		if k.String() != name {
			t.Errorf("exp %q; got %q", name, k.String())
		}
	}
}

// permutations returns every ordering of the indexes [0, n).
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	var out [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			perm := make([]int, 0, n)
			perm = append(perm, p[:i]...)
			perm = append(perm, n-1)
			perm = append(perm, p[i:]...)
			out = append(out, perm)
		}
	}
	return out
}
