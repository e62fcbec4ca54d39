// Package throttle provides a shareable token-bucket [Limiter] on top of
// [golang.org/x/time/rate], and an [http.RoundTripper] that waits on it.
//
// # Usage
//
// Build one limiter and hand the same pointer to every component that must
// draw from the same quota:
//
//	lim, err := throttle.New(throttle.PerSecond(10), func() *slog.Logger { return slog.Default() })
//	if err != nil { ... }
//
//	rt, err := throttle.NewRoundTripper(lim, http.DefaultTransport)
//	httpClient := &http.Client{Transport: rt}
//
// When the quota is exhausted, callers block until a token becomes
// available or their context is cancelled.
package throttle
