package odata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/odata/client"
	"github.com/adamwoolhether/odata/metrics"
	"github.com/adamwoolhether/odata/query"
)

// Transport performs a single HTTP GET. [client.Client] implements it.
// Implementations must be safe for concurrent use.
type Transport interface {
	Get(ctx context.Context, u *url.URL) (*http.Response, error)
}

// Executor dispatches a path and returns the raw response, which the
// caller must close. [DataSource] and [RateLimitedDataSource] implement it.
type Executor interface {
	Execute(ctx context.Context, p query.Path) (*http.Response, error)
}

// DataSource represents a target OData API reachable over HTTPS. It is
// immutable after construction and safe for concurrent use.
type DataSource struct {
	transport Transport
	authority string
	scheme    string
	basePath  string
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *metrics.Collector
}

// New constructs a DataSource for the API at authority (host or host:port).
//
//	ds, err := odata.New("oda.ft.dk", odata.WithBasePath("/api"))
func New(authority string, optFns ...Option) (*DataSource, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	cfg := config{
		Authority: authority,
		BasePath:  opts.basePath,
	}
	if err := check(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	ds := DataSource{
		transport: opts.transport,
		authority: cfg.Authority,
		scheme:    "https",
		basePath:  cfg.BasePath,
		logger:    opts.logger,
		tracer:    opts.tracer,
		metrics:   opts.metrics,
	}

	if ds.logger == nil {
		ds.logger = slog.Default()
	}

	if ds.tracer == nil {
		ds.tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	if ds.transport == nil {
		c, err := client.Build(client.WithLogger(ds.logger))
		if err != nil {
			return nil, fmt.Errorf("building transport: %w", err)
		}
		ds.transport = c
	}

	return &ds, nil
}

// Authority returns the host[:port] the data source targets.
func (ds *DataSource) Authority() string { return ds.authority }

// BasePath returns the path prefix injected into every request.
func (ds *DataSource) BasePath() string { return ds.basePath }

// URL returns the full URI p resolves to on this data source.
func (ds *DataSource) URL(p query.Path) (*url.URL, error) {
	pq, err := p.WithBasePath(ds.basePath).Build()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(ds.scheme + "://" + ds.authority + pq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	return u, nil
}

// Execute builds p against this data source and issues one GET. The
// response body is unread and must be closed by the caller. Execute does
// not retry and enforces no timeout of its own.
func (ds *DataSource) Execute(ctx context.Context, p query.Path) (*http.Response, error) {
	resource := p.ResourceType()

	ctx, span := ds.tracer.Start(ctx, "odata.execute",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("odata.resource", resource)),
	)
	defer span.End()

	u, err := ds.URL(p)
	if err != nil {
		ds.fail(span, resource, metrics.OutcomeURI, 0, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("url.full", u.String()))
	ds.logger.Debug("fetching", "uri", u.String())

	start := time.Now()
	resp, err := ds.transport.Get(ctx, u)
	elapsed := time.Since(start)

	if err != nil {
		var statusErr *client.UnexpectedStatusError
		if errors.As(err, &statusErr) {
			span.SetAttributes(attribute.Int("http.response.status_code", statusErr.StatusCode))
			ds.fail(span, resource, metrics.OutcomeStatus, elapsed, err)
			return nil, fmt.Errorf("fetching %s: %w", resource, err)
		}

		ds.fail(span, resource, metrics.OutcomeTransport, elapsed, err)
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrTransport, resource, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	ds.metrics.RecordRequest(resource, metrics.OutcomeOK, elapsed)

	return resp, nil
}

func (ds *DataSource) fail(span trace.Span, resource, outcome string, elapsed time.Duration, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	ds.metrics.RecordRequest(resource, outcome, elapsed)
}

// Fetch retrieves a single resource and decodes it as T. The request is
// always sent with $format=json.
func Fetch[T any](ctx context.Context, ex Executor, req GetRequest) (T, error) {
	var zero T

	resp, err := ex.Execute(ctx, req.Path().Format(FormatJSON))
	if err != nil {
		return zero, err
	}

	return decode[T](resp)
}

// FetchPaged retrieves one page of a collection and decodes its items as
// T. The request is always sent with $format=json. Following
// [Page.NextLink] is left to the caller.
func FetchPaged[T any](ctx context.Context, ex Executor, req ListRequest) (Page[T], error) {
	resp, err := ex.Execute(ctx, req.Path().Format(FormatJSON))
	if err != nil {
		return Page[T]{}, err
	}

	return decodePage[T](resp)
}
