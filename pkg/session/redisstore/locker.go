package redisstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/inputkit/pkg/session"
)

var _ session.Locker = (*Locker)(nil)

// unlockScript deletes the lock only if it still belongs to the caller.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a session.Locker shared by every process using the same Redis.
// Locks expire after their TTL so a crashed holder cannot block a session
// forever.
type Locker struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	retry  time.Duration
}

// LockerOption configures Locker.
type LockerOption func(*Locker)

// WithLockPrefix sets the lock key prefix (default "session_lock:").
func WithLockPrefix(prefix string) LockerOption {
	return func(l *Locker) {
		l.prefix = prefix
	}
}

// WithLockTTL sets how long a lock lives without being released (default 30s).
// The TTL is not renewed while the lock is held, so it must exceed the
// longest time a request keeps a session between Open and Pause or Close.
// Past the TTL another process can take the lock while the first still
// believes it owns it.
func WithLockTTL(ttl time.Duration) LockerOption {
	return func(l *Locker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

// WithLockRetry sets the polling interval while a lock is busy.
func WithLockRetry(d time.Duration) LockerOption {
	return func(l *Locker) {
		if d > 0 {
			l.retry = d
		}
	}
}

// NewLocker creates a Locker on top of client.
func NewLocker(client redis.UniversalClient, opts ...LockerOption) *Locker {
	l := &Locker{
		client: client,
		prefix: "session_lock:",
		ttl:    30 * time.Second,
		retry:  25 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLockerFromConfig creates a Locker using the lock settings from cfg.
func NewLockerFromConfig(client redis.UniversalClient, cfg Config) *Locker {
	return NewLocker(client,
		WithLockPrefix(cfg.LockPrefix),
		WithLockTTL(cfg.LockTTL),
		WithLockRetry(cfg.LockRetry),
	)
}

// Lock polls SET NX until the lock is taken or ctx is done.
func (l *Locker) Lock(ctx context.Context, token string) (session.Unlock, error) {
	key := l.prefix + token
	owner := uuid.NewString()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, owner, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, errors.Join(session.ErrLockFailed, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(session.ErrLockFailed, ctx.Err())
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func(ctx context.Context) error {
		var err error
		once.Do(func() {
			err = unlockScript.Run(ctx, l.client, []string{key}, owner).Err()
		})
		return err
	}, nil
}
