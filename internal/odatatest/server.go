// Package odatatest provides an in-process HTTPS server that answers like an
// OData 3.0 JSON endpoint, for use in tests.
package odatatest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Server is a TLS test server. Responses are looked up by the raw request
// URI (escaped path plus query); unknown URIs answer 404.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]response
	fallback  http.HandlerFunc
	requests  []Request
	calls     atomic.Int64
}

// Request captures one request received by the server.
type Request struct {
	URI       string
	RequestID string
	At        time.Time
}

type response struct {
	status int
	body   []byte
}

// New starts a Server and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{responses: make(map[string]response)}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	return s
}

// Authority returns the host:port the server listens on.
func (s *Server) Authority() string {
	u, _ := url.Parse(s.URL)
	return u.Host
}

// Handle answers requests for uri with status and a raw body.
func (s *Server) Handle(uri string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[uri] = response{status: status, body: []byte(body)}
}

// HandleJSON answers requests for uri with 200 and v encoded as JSON.
func (s *Server) HandleJSON(t testing.TB, uri string, v any) {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encoding fixture for %s: %v", uri, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[uri] = response{status: http.StatusOK, body: b}
}

// HandleFunc answers every URI without a registered response with fn.
func (s *Server) HandleFunc(fn http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fallback = fn
}

// Requests returns the requests received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls returns the number of requests received.
func (s *Server) Calls() int64 {
	return s.calls.Load()
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		URI:       r.RequestURI,
		RequestID: r.Header.Get("X-Request-ID"),
		At:        time.Now(),
	})
	resp, ok := s.responses[r.RequestURI]
	fallback := s.fallback
	s.mu.Unlock()

	if !ok && fallback != nil {
		fallback(w, r)
		return
	}

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"odata.error":{"code":"","message":{"lang":"en-US","value":"Resource not found for the segment '` + strings.TrimPrefix(r.URL.Path, "/") + `'."}}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json;odata=minimalmetadata")
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.body)))
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}
