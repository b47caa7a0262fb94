package cookie

import "net/http"

// Attributes are the attributes written with every cookie.
type Attributes struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option adjusts the attributes of a single cookie or the manager defaults.
type Option func(*Attributes)

func WithPath(path string) Option {
	return func(a *Attributes) { a.Path = path }
}

func WithDomain(domain string) Option {
	return func(a *Attributes) { a.Domain = domain }
}

// WithMaxAge sets the lifetime in seconds. Zero makes a browser-session
// cookie and a negative value deletes the cookie.
func WithMaxAge(seconds int) Option {
	return func(a *Attributes) { a.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(a *Attributes) { a.Secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(a *Attributes) { a.HttpOnly = httpOnly }
}

func WithSameSite(mode http.SameSite) Option {
	return func(a *Attributes) { a.SameSite = mode }
}

func (a Attributes) with(opts []Option) Attributes {
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a Attributes) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     a.Path,
		Domain:   a.Domain,
		MaxAge:   a.MaxAge,
		Secure:   a.Secure,
		HttpOnly: a.HttpOnly,
		SameSite: a.SameSite,
	}
}
