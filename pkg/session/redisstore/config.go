package redisstore

import "time"

// Config holds the Redis connection and session key settings.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	KeyPrefix  string        `env:"REDIS_SESSION_PREFIX" envDefault:"session:"`
	LockPrefix string        `env:"REDIS_SESSION_LOCK_PREFIX" envDefault:"session_lock:"`
	LockTTL    time.Duration `env:"REDIS_SESSION_LOCK_TTL" envDefault:"30s"`    // not renewed; must exceed the longest session hold
	LockRetry  time.Duration `env:"REDIS_SESSION_LOCK_RETRY" envDefault:"25ms"` // polling interval while the lock is busy
	Encoding   string        `env:"REDIS_SESSION_ENCODING" envDefault:"cbor"`   // cbor or json
}

// DefaultConfig returns the defaults used when no Config is given.
func DefaultConfig() Config {
	return Config{
		ConnectionURL:  "redis://localhost:6379/0",
		RetryAttempts:  3,
		RetryInterval:  5 * time.Second,
		ConnectTimeout: 30 * time.Second,
		KeyPrefix:      "session:",
		LockPrefix:     "session_lock:",
		LockTTL:        30 * time.Second,
		LockRetry:      25 * time.Millisecond,
		Encoding:       "cbor",
	}
}
