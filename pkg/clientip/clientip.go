package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolver extracts the client address from a request.
// Headers are consulted in order and only when listed; the connection's
// RemoteAddr is the fallback. List only headers your proxy overwrites,
// since clients can send any of them.
type Resolver struct {
	headers []string
}

// New creates a Resolver trusting the given headers. With no headers only
// RemoteAddr is used.
func New(trustedHeaders ...string) *Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: headers}
}

// NewFromConfig creates a Resolver from cfg.
func NewFromConfig(cfg Config) *Resolver {
	return New(cfg.TrustedHeaders...)
}

// IP returns the normalized client IP, or "" when none could be parsed.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		// X-Forwarded-For style headers carry a list, the client is first.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
