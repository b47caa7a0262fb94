package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
	"github.com/dmitrymomot/inputkit/pkg/cookie"
	"github.com/dmitrymomot/inputkit/pkg/fingerprint"
	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
)

// Manager handles session operations
type Manager struct {
	store     Store
	locker    Locker
	transport Transport
	cookies   *cookie.Manager
	cookieOpt []cookie.Option
	resolver  *clientip.Resolver
	config    Config
	log       *slog.Logger
}

// New creates a new session manager with the given options.
// Defaults: MemoryStore, MemoryLocker, an encrypted cookie named
// Config.CookieName (plus Config.HeaderName when set) and a resolver
// trusting RemoteAddr only. Without WithTransport a cookie manager must be
// supplied with WithCookieManager, otherwise New panics.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		log:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.transport == nil {
		if m.cookies == nil {
			panic("session: cookie manager is required when using the default cookie transport")
		}
		cookieOpts := append([]cookie.Option{cookie.WithSecure(m.config.SecureCookies)}, m.cookieOpt...)
		m.transport = NewCookieTransport(m.cookies, m.config.CookieName, cookieOpts...)
		if m.config.HeaderName != "" {
			m.transport = NewCompositeTransport(m.transport, NewHeaderTransport(m.config.HeaderName))
		}
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	if m.locker == nil {
		m.locker = NewMemoryLocker()
	}
	if m.resolver == nil {
		m.resolver = clientip.New()
	}

	return m
}

// Open returns the session for the request, locked for the caller.
// A missing, expired or invalid session is replaced by a new one stamped
// with the validity markers of the current request, and its token is sent
// through the transport. The caller must Close the returned source.
// A fingerprint stored by fingerprint.Middleware takes precedence over
// one computed with the manager's resolver.
func (m *Manager) Open(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Source, error) {
	fp, ok := fingerprint.FromContext(ctx)
	if !ok {
		fp = fingerprint.Generate(r, m.resolver)
	}

	if token, err := m.transport.GetToken(r); err == nil && token != "" {
		src, err := m.load(ctx, token, fp)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) && !errors.Is(err, ErrInvalidSession) {
			return nil, err
		}
		m.log.DebugContext(ctx, "starting new session", logger.Error(err))
	}

	return m.start(ctx, w, fp)
}

// Destroy deletes the session, clears the token and closes src.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, src *Source) error {
	if src.state == stateClosed {
		return ErrSessionClosed
	}

	err := m.store.Delete(ctx, src.session.Token)
	src.state = stateClosed
	return errors.Join(err, m.transport.ClearToken(w), src.release(ctx))
}

// Regenerate moves the session to a new token, keeping its ID and data.
// Call it when privileges change, e.g. after login.
func (m *Manager) Regenerate(ctx context.Context, w http.ResponseWriter, src *Source) error {
	if err := src.usable(); err != nil {
		return err
	}

	token, err := generateToken()
	if err != nil {
		return err
	}
	unlock, err := m.lock(ctx, token)
	if err != nil {
		return err
	}

	oldToken := src.session.Token
	next := src.session.Clone()
	next.Token = token
	m.extend(next)

	if err := m.store.Create(ctx, next); err != nil {
		return errors.Join(err, unlock(ctx))
	}
	if err := m.transport.SetToken(w, token, m.config.IdleTimeout); err != nil {
		return errors.Join(err, m.store.Delete(ctx, token), unlock(ctx))
	}
	if err := m.store.Delete(ctx, oldToken); err != nil {
		m.log.WarnContext(ctx, "failed to delete rotated session", logger.SessionID(src.GetSessionID()), logger.Error(err))
	}

	releaseErr := src.release(ctx)
	src.session = next
	src.unlock = unlock
	return releaseErr
}

// Close releases resources held by the store, if it holds any.
func (m *Manager) Close() error {
	if c, ok := m.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (m *Manager) load(ctx context.Context, token string, fp fingerprint.Fingerprint) (*Source, error) {
	unlock, err := m.lock(ctx, token)
	if err != nil {
		return nil, err
	}

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, errors.Join(err, unlock(ctx))
	}

	src := newSource(m, sess, fp, unlock)
	if !src.IsValid() {
		m.log.InfoContext(ctx, "rejecting invalid session", logger.SessionID(src.GetSessionID()))
		return nil, errors.Join(ErrInvalidSession, unlock(ctx))
	}
	return src, nil
}

func (m *Manager) start(ctx context.Context, w http.ResponseWriter, fp fingerprint.Fingerprint) (*Source, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	sess := NewSession(token, m.config.IdleTimeout)
	m.extend(sess)
	Stamp(sess, fp)

	unlock, err := m.lock(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := m.store.Create(ctx, sess); err != nil {
		return nil, errors.Join(err, unlock(ctx))
	}
	if err := m.transport.SetToken(w, token, m.config.IdleTimeout); err != nil {
		return nil, errors.Join(err, m.store.Delete(ctx, token), unlock(ctx))
	}

	return newSource(m, sess, fp, unlock), nil
}

// save slides the expiry and persists the session.
func (m *Manager) save(ctx context.Context, sess *Session) error {
	sess.Touch()
	m.extend(sess)
	return m.store.Update(ctx, sess)
}

// extend sets the next expiry (min of idle and max lifetime) and keeps the
// expires marker in sync when the session carries one.
func (m *Manager) extend(sess *Session) {
	sess.ExpiresAt = calculateExpiry(sess.CreatedAt, time.Now(), m.config.IdleTimeout, m.config.MaxLifetime)
	if _, ok := sess.Get(MarkerExpires); ok {
		sess.Set(MarkerExpires, input.At(sess.ExpiresAt))
	}
}

func (m *Manager) lock(ctx context.Context, token string) (Unlock, error) {
	lockCtx, cancel := lockContext(ctx, m.config.LockTimeout)
	defer cancel()
	return m.locker.Lock(lockCtx, token)
}

// calculateExpiry returns the next expiry time (min of idle and max lifetime)
func calculateExpiry(createdAt, now time.Time, idle, max time.Duration) time.Time {
	idleExpiry := now.Add(idle)
	if max <= 0 {
		return idleExpiry
	}
	maxExpiry := createdAt.Add(max)

	if maxExpiry.Before(idleExpiry) {
		return maxExpiry
	}
	return idleExpiry
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
