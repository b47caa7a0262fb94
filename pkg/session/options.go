package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
	"github.com/dmitrymomot/inputkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets a custom session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithLocker sets the lock used to serialize requests for one session
func WithLocker(locker Locker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithTransport sets a custom session transport
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithCookieManager sets the cookie manager used by the default cookie
// transport. Options are applied to every session cookie write.
func WithCookieManager(cookies *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookies = cookies
		m.cookieOpt = opts
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithIdleTimeout sets how long a session lives without requests
func WithIdleTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.config.IdleTimeout = d
	}
}

// WithMaxLifetime sets the absolute session lifetime
func WithMaxLifetime(d time.Duration) Option {
	return func(m *Manager) {
		m.config.MaxLifetime = d
	}
}

// WithLockTimeout sets how long to wait for a busy session
func WithLockTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.config.LockTimeout = d
	}
}

// WithCleanupInterval sets the cleanup interval for expired sessions
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.config.CleanupInterval = interval
	}
}

// WithResolver sets how the client address hashed into the validity markers is resolved
func WithResolver(res *clientip.Resolver) Option {
	return func(m *Manager) {
		m.resolver = res
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}
