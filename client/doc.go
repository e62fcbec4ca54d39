// Package client provides the HTTP transport used by the odata data
// sources: a configurable [net/http] client that issues GET requests and
// turns non-2xx responses into errors.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Making Requests
//
// [Client.Get] sends one GET and returns the response with its body
// unread:
//
//	resp, err := c.Get(ctx, u)
//	if err != nil { ... }
//	defer c.Close(resp)
//
// Every request carries an X-Request-ID header and the W3C trace context
// of ctx, as configured on the global OpenTelemetry propagator.
//
// # Throttling
//
// [WithThrottle] gives the client its own token bucket. To make several
// clients draw from one quota, build a [throttle.Limiter] once and pass it
// to each with [WithLimiter].
package client
