package session

import "errors"

var (
	// ErrInvalidSession indicates the session cannot be stored
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrSessionPaused indicates the session was paused and must be resumed first
	ErrSessionPaused = errors.New("session.paused")

	// ErrSessionClosed indicates the session source was closed or destroyed
	ErrSessionClosed = errors.New("session.closed")

	// ErrLockFailed indicates the session lock could not be acquired
	ErrLockFailed = errors.New("session.lock_failed")

	// ErrNotInContext indicates no session source was attached to the context
	ErrNotInContext = errors.New("session.not_in_context")
)
