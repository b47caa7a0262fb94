package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/inputkit/pkg/fingerprint"
	"github.com/dmitrymomot/inputkit/pkg/input"
)

// Validity markers written into every session the Manager starts.
const (
	MarkerServerGenerated = "server_generated_sid"
	MarkerRemoteAddress   = "remote_address"
	MarkerUserAgent       = "user_agent"
	MarkerExpires         = "expires"
)

type sourceState int

const (
	stateActive sourceState = iota
	statePaused
	stateClosed
)

var _ input.Source = (*Source)(nil)

// Source is the input source over an open session. It holds the session
// lock until Pause, Close or Destroy. A Source is bound to one request and
// is not safe for concurrent use.
type Source struct {
	*input.Accessor

	manager *Manager
	session *Session
	fp      fingerprint.Fingerprint
	unlock  Unlock
	state   sourceState
}

func newSource(m *Manager, sess *Session, fp fingerprint.Fingerprint, unlock Unlock) *Source {
	s := &Source{
		manager: m,
		session: sess,
		fp:      fp,
		unlock:  unlock,
	}
	s.Accessor = input.NewAccessor(sourceBackend{s}, input.WithGuard(s.usable))
	return s
}

// GetSessionID returns the session identifier.
func (s *Source) GetSessionID() string {
	return s.session.ID.String()
}

// Token returns the token the client presents.
func (s *Source) Token() string {
	return s.session.Token
}

// Session returns the session entity backing the source.
func (s *Source) Session() *Session {
	return s.session
}

// Paused reports whether the source is paused.
func (s *Source) Paused() bool {
	return s.state == statePaused
}

// Pause persists the session and releases its lock so concurrent requests
// for the same session can proceed. Until Resume, Get and Set return
// ErrSessionPaused and Has reports false.
func (s *Source) Pause(ctx context.Context) error {
	switch s.state {
	case statePaused:
		return nil
	case stateClosed:
		return ErrSessionClosed
	}

	if err := s.manager.save(ctx, s.session); err != nil {
		return err
	}
	s.state = statePaused
	return s.release(ctx)
}

// Resume re-acquires the lock and reloads the session from the store,
// picking up changes made by other requests while paused.
func (s *Source) Resume(ctx context.Context) error {
	switch s.state {
	case stateActive:
		return nil
	case stateClosed:
		return ErrSessionClosed
	}

	unlock, err := s.manager.lock(ctx, s.session.Token)
	if err != nil {
		return err
	}
	sess, err := s.manager.store.Get(ctx, s.session.Token)
	if err != nil {
		return errors.Join(err, unlock(ctx))
	}

	s.session = sess
	s.unlock = unlock
	s.state = stateActive
	return nil
}

// Close persists the session and releases its lock. Closing a paused or
// closed source does nothing.
func (s *Source) Close(ctx context.Context) error {
	switch s.state {
	case stateClosed:
		return nil
	case statePaused:
		s.state = stateClosed
		return nil
	}

	err := s.manager.save(ctx, s.session)
	s.state = stateClosed
	return errors.Join(err, s.release(ctx))
}

// IsValid reports whether the session was started by this server for the
// client making the current request and has not expired. It is false when
// the data is empty, when a marker is missing, when the hashed remote
// address or user agent differ from the current request, when the expiry
// has passed or when the server-generated flag is falsy.
func (s *Source) IsValid() bool {
	data := s.session.Data
	if len(data) == 0 {
		return false
	}

	generated, ok := data[MarkerServerGenerated]
	if !ok || generated == nil {
		return false
	}
	addr, ok := data[MarkerRemoteAddress]
	if !ok || addr == nil {
		return false
	}
	ua, ok := data[MarkerUserAgent]
	if !ok || ua == nil {
		return false
	}
	expires, ok := data[MarkerExpires]
	if !ok || expires == nil {
		return false
	}

	if !fingerprint.Equal(input.AsString(addr), s.fp.RemoteAddress) {
		return false
	}
	if !fingerprint.Equal(input.AsString(ua), s.fp.UserAgent) {
		return false
	}

	exp, err := input.AsDateTime(expires)
	if err != nil || time.Now().After(exp) {
		return false
	}

	return input.AsBool(generated)
}

func (s *Source) usable() error {
	switch s.state {
	case statePaused:
		return ErrSessionPaused
	case stateClosed:
		return ErrSessionClosed
	}
	return nil
}

func (s *Source) release(ctx context.Context) error {
	if s.unlock == nil {
		return nil
	}
	unlock := s.unlock
	s.unlock = nil
	return unlock(ctx)
}

// Stamp writes the validity markers for fp into sess.
func Stamp(sess *Session, fp fingerprint.Fingerprint) {
	sess.Set(MarkerServerGenerated, input.Bool(true))
	sess.Set(MarkerRemoteAddress, input.Text(fp.RemoteAddress))
	sess.Set(MarkerUserAgent, input.Text(fp.UserAgent))
	sess.Set(MarkerExpires, input.At(sess.ExpiresAt))
}

type sourceBackend struct {
	src *Source
}

func (b sourceBackend) Has(key string) bool {
	if b.src.state != stateActive {
		return false
	}
	_, ok := b.src.session.Get(key)
	return ok
}

func (b sourceBackend) Lookup(key string) (input.Value, bool) {
	return b.src.session.Get(key)
}

func (b sourceBackend) Store(key string, v input.Value) error {
	b.src.session.Set(key, v)
	return nil
}
