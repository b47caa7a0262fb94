package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/inputkit/pkg/session"
)

var _ session.Store = (*Store)(nil)

// Store keeps each session under <prefix><token> with a TTL matching its
// expiry, so Redis evicts expired sessions on its own.
type Store struct {
	client redis.UniversalClient
	prefix string
	codec  Codec
}

// Option configures Store.
type Option func(*Store)

// WithKeyPrefix sets the key prefix (default "session:").
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithCodec sets the serialization format (default CBOR).
func WithCodec(c Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// New creates a Store on top of client.
func New(client redis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "session:",
		codec:  CBOR,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Store using the prefix and encoding from cfg.
func NewFromConfig(client redis.UniversalClient, cfg Config) (*Store, error) {
	codec, err := CodecByName(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return New(client, WithKeyPrefix(cfg.KeyPrefix), WithCodec(codec)), nil
}

// Create stores a new session
func (s *Store) Create(ctx context.Context, sess *session.Session) error {
	data, ttl, err := s.encode(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sess.Token), data, ttl).Err()
}

// Get retrieves a session by token
func (s *Store) Get(ctx context.Context, token string) (*session.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess session.Session
	if err := s.codec.Unmarshal(data, &sess); err != nil {
		return nil, errors.Join(session.ErrInvalidSession, err)
	}
	if sess.IsExpired() {
		_ = s.client.Del(ctx, s.key(token)).Err()
		return nil, session.ErrSessionExpired
	}
	return &sess, nil
}

// Update overwrites an existing session and refreshes its TTL
func (s *Store) Update(ctx context.Context, sess *session.Session) error {
	data, ttl, err := s.encode(sess)
	if err != nil {
		return err
	}
	ok, err := s.client.SetXX(ctx, s.key(sess.Token), data, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session by token
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

// DeleteExpired is a no-op: keys expire through their TTL.
func (s *Store) DeleteExpired(ctx context.Context) error {
	return nil
}

func (s *Store) key(token string) string {
	return s.prefix + token
}

func (s *Store) encode(sess *session.Session) ([]byte, time.Duration, error) {
	if sess == nil || sess.Token == "" {
		return nil, 0, session.ErrInvalidSession
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil, 0, session.ErrSessionExpired
	}
	data, err := s.codec.Marshal(sess)
	if err != nil {
		return nil, 0, errors.Join(session.ErrInvalidSession, err)
	}
	return data, ttl, nil
}
