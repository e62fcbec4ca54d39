// Package query builds OData resource paths and system query options.
//
// An [Options] set holds at most one value per option and always encodes
// its keys in ascending order, so two sets with the same values produce
// byte-identical query strings regardless of the order the setters ran:
//
//	opts := query.Options{}.Top(2).Skip(3).OrderBy("date", query.Ascending)
//	opts.Encode() // $orderby=date%20asc&$skip=3&$top=2
//
// A [Path] combines a resource type, an optional id and an option set:
//
//	pq, err := query.NewPath("Dokument").WithID(24).Expand("DokumentAktør").Build()
//	// /Dokument(24)?$expand=DokumentAkt%C3%B8r
//
// $expand is the one option that accumulates: each call appends to the
// previous field list. All other options, $filter included, replace any
// earlier value.
package query
