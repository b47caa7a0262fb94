package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport carries the session token in a request header, for API
// clients that do not keep cookies. The token is echoed in the response
// under the same header name.
type HeaderTransport struct {
	name   string
	scheme string
	expiry string
}

// HeaderOption adjusts a HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets the scheme written before the token. The default
// is "Bearer "; pass "" for a bare token.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) { t.scheme = prefix }
}

// WithExpiryHeader names the response header announcing when the token
// expires. The default is the token header name plus "-Expires"; pass ""
// to omit it.
func WithExpiryHeader(name string) HeaderOption {
	return func(t *HeaderTransport) { t.expiry = name }
}

// NewHeaderTransport creates a header transport reading and writing name.
func NewHeaderTransport(name string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		name:   name,
		scheme: "Bearer ",
		expiry: name + "-Expires",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToken strips the scheme from the header value. An absent or blank
// value is ErrSessionNotFound.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	token := r.Header.Get(t.name)
	if t.scheme != "" {
		token, _ = strings.CutPrefix(token, t.scheme)
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// SetToken writes the token and, when configured, its RFC 3339 expiry.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	h := w.Header()
	h.Set(t.name, t.scheme+token)
	if t.expiry != "" && ttl > 0 {
		h.Set(t.expiry, time.Now().Add(ttl).UTC().Format(time.RFC3339))
	}
	return nil
}

// ClearToken drops both headers from the response.
func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	h := w.Header()
	h.Del(t.name)
	if t.expiry != "" {
		h.Del(t.expiry)
	}
	return nil
}
