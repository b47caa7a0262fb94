package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/inputkit/pkg/cookie"
)

// CookieTransport carries the session token in an encrypted cookie.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
	opts    []cookie.Option
}

// NewCookieTransport creates a cookie transport writing the cookie name
// through cookies. Options are applied on top of the manager defaults
// for every write and delete.
func NewCookieTransport(cookies *cookie.Manager, name string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookies: cookies,
		name:    name,
		opts:    opts,
	}
}

// GetToken opens the session cookie. A missing cookie and one that does
// not decrypt are both reported as ErrSessionNotFound.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookies.GetEncrypted(r, t.name)
	if err != nil || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// SetToken writes the session cookie with a max age matching ttl.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := append([]cookie.Option{cookie.WithMaxAge(int(ttl.Seconds()))}, t.opts...)
	return t.cookies.SetEncrypted(w, t.name, token, opts...)
}

// ClearToken expires the session cookie
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name, t.opts...)
	return nil
}
