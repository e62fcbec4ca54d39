package throttle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// Quota defines the limiter's sustained rate and burst capacity.
type Quota struct {
	// Rate is the number of tokens added per second.
	Rate rate.Limit
	// Burst is the maximum number of tokens held at once.
	Burst int
}

// PerSecond returns a quota admitting n requests per second, all of which
// may be spent at once.
func PerSecond(n int) Quota {
	return Quota{Rate: rate.Limit(n), Burst: n}
}

// Every returns a quota adding one token per interval, holding at most burst.
func Every(interval time.Duration, burst int) Quota {
	return Quota{Rate: rate.Every(interval), Burst: burst}
}

func (q Quota) validate() error {
	if q.Rate <= 0 || q.Burst <= 0 {
		return fmt.Errorf("rate[%v] and burst[%d] %w", q.Rate, q.Burst, ErrMustNotBeZero)
	}
	return nil
}

// Limiter is a token-bucket limiter meant to be shared: every holder of the
// same *Limiter draws from one quota. It is safe for concurrent use.
//
// Waiters are not served in FIFO order; under sustained contention a waiter
// may be overtaken by later callers.
type Limiter struct {
	limiter *rate.Limiter
	quota   Quota
	logFn   func() *slog.Logger
}

// New returns a Limiter enforcing q. logFn lazily resolves the logger at
// wait time, making option ordering irrelevant. A nil logFn, or one
// returning nil, disables logging.
func New(q Quota, logFn func() *slog.Logger) (*Limiter, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	if logFn == nil {
		logFn = func() *slog.Logger { return nil }
	}

	l := &Limiter{
		limiter: rate.NewLimiter(q.Rate, q.Burst),
		quota:   q,
		logFn:   logFn,
	}

	return l, nil
}

// Quota returns the configured quota.
func (l *Limiter) Quota() Quota {
	return l.quota
}

// Wait blocks until one token is available or ctx ends, and returns how
// long it waited. A token taken before ctx ends is not returned to the
// bucket.
func (l *Limiter) Wait(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	var waited time.Duration
	logger := l.logFn()
	if logger != nil && l.limiter.Tokens() < 1 {
		logger.Info("throttle tokens exhausted", "rate", float64(l.quota.Rate), "burst", l.quota.Burst)

		defer func() {
			logger.Info("throttle wait complete", "waited", waited.String(), "rate", float64(l.quota.Rate), "burst", l.quota.Burst)
		}()
	}

	start := time.Now()

	err := l.limiter.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return waited, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return waited, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return waited, nil
}

// throttle is an http.RoundTripper, using a shared Limiter
// to restrict outbound calls.
type throttle struct {
	limiter *Limiter
	next    http.RoundTripper
}

// NewRoundTripper returns an http.RoundTripper that waits on limiter
// before handing each request to next. Round trippers built from the same
// limiter share its quota.
func NewRoundTripper(limiter *Limiter, next http.RoundTripper) (http.RoundTripper, error) {
	if limiter == nil {
		return nil, errors.New("limiter must not be nil")
	}
	if next == nil {
		next = http.DefaultTransport
	}

	return &throttle{limiter: limiter, next: next}, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	if _, err := t.limiter.Wait(r.Context()); err != nil {
		return nil, err
	}

	return t.next.RoundTrip(r)
}

// CloseIdleConnections forwards to next when it supports closing idle connections.
func (t *throttle) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := t.next.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
