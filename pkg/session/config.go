package session

import "time"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// HeaderName enables token transport via this header in addition to the cookie
	HeaderName string `env:"SESSION_HEADER_NAME"`

	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24h"`

	// LockTimeout bounds how long Open and Resume wait for a busy session (0 waits for the request context)
	LockTimeout time.Duration `env:"SESSION_LOCK_TIMEOUT" envDefault:"10s"`

	// CleanupInterval for expired sessions in the memory store (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		IdleTimeout:     30 * time.Minute,
		MaxLifetime:     24 * time.Hour,
		LockTimeout:     10 * time.Second,
		CleanupInterval: 5 * time.Minute,
		SecureCookies:   false,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// A non-empty HeaderName adds a header transport next to the cookie.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
