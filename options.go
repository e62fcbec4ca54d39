package odata

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/odata/metrics"
)

// Option is a functional option for configuring a [DataSource] via [New].
type Option func(*options) error
type options struct {
	transport Transport
	basePath  string
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *metrics.Collector
}

// WithTransport sets the HTTP transport. It defaults to a [client.Client]
// built without options.
func WithTransport(t Transport) Option {
	return func(o *options) error {
		if t == nil {
			return errors.New("transport must not be nil")
		}
		o.transport = t
		return nil
	}
}

// WithBasePath sets the path prefix of the API, such as "/api". It must be
// empty or start with '/'.
func WithBasePath(basePath string) Option {
	return func(o *options) error {
		o.basePath = basePath
		return nil
	}
}

// WithLogger injects a custom [slog.Logger].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer injects the tracer used to span every request. A no-op tracer
// is used by default.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// WithMetrics records request metrics on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) error {
		o.metrics = c
		return nil
	}
}
