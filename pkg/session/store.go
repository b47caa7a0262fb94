package session

import (
	"context"
	"time"
)

// Store defines the interface for session persistence.
// Get returns ErrSessionNotFound for unknown tokens and ErrSessionExpired
// for sessions past ExpiresAt.
type Store interface {
	// Create stores a new session
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token
	Get(ctx context.Context, token string) (*Session, error)

	// Update replaces the data and timestamps of an existing session
	Update(ctx context.Context, session *Session) error

	// Delete removes a session by token
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions
	DeleteExpired(ctx context.Context) error
}

// Unlock releases a lock taken by Locker.Lock. Calling it more than once is
// a no-op.
type Unlock func(ctx context.Context) error

// Locker serializes access to a session across concurrent requests.
type Locker interface {
	// Lock blocks until the token is free or ctx is done.
	Lock(ctx context.Context, token string) (Unlock, error)
}

// lockContext bounds lock acquisition by timeout when it is positive.
func lockContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
