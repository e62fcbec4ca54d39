package odata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/adamwoolhether/odata/metrics"
	"github.com/adamwoolhether/odata/query"
	"github.com/adamwoolhether/odata/throttle"
)

// ErrNotConfigured is returned by a RateLimitedDataSource that was not
// built with [NewRateLimited] or [PerSecond].
var ErrNotConfigured = errors.New("rate-limited data source not configured")

// RateLimitedDataSource throttles a [DataSource] through a token-bucket
// limiter. Copies of a RateLimitedDataSource share the same limiter, so
// the combined rate admitted across all copies never exceeds the quota it
// was built with. The zero value is not usable.
type RateLimitedDataSource struct {
	source  *DataSource
	limiter *throttle.Limiter
}

// NewRateLimited wraps src with a limiter enforcing q.
func NewRateLimited(src *DataSource, q throttle.Quota) (RateLimitedDataSource, error) {
	if src == nil {
		return RateLimitedDataSource{}, errors.New("data source must not be nil")
	}

	lim, err := throttle.New(q, func() *slog.Logger { return src.logger })
	if err != nil {
		return RateLimitedDataSource{}, fmt.Errorf("configuring limiter: %w", err)
	}

	return RateLimitedDataSource{source: src, limiter: lim}, nil
}

// PerSecond wraps src with a limiter admitting at most n requests per
// second, with a burst of n.
func PerSecond(src *DataSource, n int) (RateLimitedDataSource, error) {
	return NewRateLimited(src, throttle.PerSecond(n))
}

// WithSource returns a copy that dispatches through src while still
// drawing from the receiver's limiter.
func (r RateLimitedDataSource) WithSource(src *DataSource) RateLimitedDataSource {
	r.source = src
	return r
}

// Source returns the wrapped data source.
func (r RateLimitedDataSource) Source() *DataSource { return r.source }

// Limiter returns the shared limiter.
func (r RateLimitedDataSource) Limiter() *throttle.Limiter { return r.limiter }

// Execute waits for the limiter to admit the call, then delegates to the
// wrapped data source. A token spent on a call that later fails or is
// cancelled is not returned.
func (r RateLimitedDataSource) Execute(ctx context.Context, p query.Path) (*http.Response, error) {
	if r.limiter == nil || r.source == nil {
		return nil, ErrNotConfigured
	}

	waited, err := r.limiter.Wait(ctx)
	r.source.metrics.RecordLimiterWait(waited)
	if err != nil {
		r.source.metrics.RecordRequest(p.ResourceType(), metrics.OutcomeThrottled, 0)
		return nil, fmt.Errorf("awaiting admission for %s: %w", p.ResourceType(), err)
	}

	return r.source.Execute(ctx, p)
}
