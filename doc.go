// Package odata is a client for read-only OData 3.0 APIs over HTTPS.
//
// Construct a [DataSource] for the API, describe what to read with a
// [GetRequest] or a [ListRequest], and decode the response with [Fetch]
// or [FetchPaged]:
//
//	ds, err := odata.New("oda.ft.dk", odata.WithBasePath("/api"))
//	if err != nil { ... }
//
//	type Dokument struct {
//		Titel string `json:"titel"`
//	}
//
//	doc, err := odata.Fetch[Dokument](ctx, ds, odata.NewGetRequest("Dokument", 24))
//
//	page, err := odata.FetchPaged[Dokument](ctx, ds, odata.NewListRequest("Dokument").
//		Filter("typeid", odata.Equal, "3").
//		InlineCount(odata.InlineCountAllPages).
//		Top(20))
//
// # Rate limiting
//
// [RateLimitedDataSource] puts a token bucket in front of a data source.
// Every copy of it draws from the same bucket:
//
//	limited, err := odata.PerSecond(ds, 1)
//	a, b := limited, limited // a and b share one request per second
//
// # Errors
//
// Every failure wraps exactly one of [ErrInvalidURI], [ErrTransport],
// [ErrIO], [ErrInvalidText] or [ErrParse], or is a
// [client.UnexpectedStatusError] for non-2xx responses. A [ParseError]
// carries the full response text that failed to parse.
//
// Nothing is retried or cached, and paging through [Page.NextLink] is left
// to the caller.
package odata
