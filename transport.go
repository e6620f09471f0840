package auth

import (
	"net/http"
	"sync"
)

// HeaderTransport is an http.RoundTripper holding the single mutable default
// Authorization header applied to every outbound request. SessionManager is
// the only writer; collaborators that share the wrapped client are
// authenticated without knowing about sessions at all.
type HeaderTransport struct {
	mu    sync.RWMutex
	base  http.RoundTripper
	value string
}

var _ TransportConfigurer = (*HeaderTransport)(nil)

// NewHeaderTransport wraps base, defaulting to http.DefaultTransport.
func NewHeaderTransport(base http.RoundTripper) *HeaderTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &HeaderTransport{base: base}
}

// SetAuthorization installs the default Authorization header value.
func (t *HeaderTransport) SetAuthorization(value string) {
	t.mu.Lock()
	t.value = value
	t.mu.Unlock()
}

// ClearAuthorization removes the default header.
func (t *HeaderTransport) ClearAuthorization() {
	t.SetAuthorization("")
}

// Authorization returns the current default header value.
func (t *HeaderTransport) Authorization() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.value
}

// RoundTrip applies the default header unless the request already set one.
// The request is cloned; RoundTrippers must not mutate their input.
func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	value := t.Authorization()
	if value == "" || req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", value)
	return t.base.RoundTrip(clone)
}

// Client returns an http.Client using this transport, ready to hand to the
// collaborators issuing API calls.
func (t *HeaderTransport) Client() *http.Client {
	return &http.Client{Transport: t}
}

type noopTransport struct{}

func (noopTransport) SetAuthorization(string) {}
func (noopTransport) ClearAuthorization()     {}

func normalizeTransport(t TransportConfigurer) TransportConfigurer {
	if t == nil {
		return noopTransport{}
	}
	return t
}
