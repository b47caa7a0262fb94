package pgstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/session"
)

var _ session.Store = (*Store)(nil)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store keeps sessions in the sessions table created by Migrate.
// Session data is stored as JSONB in the kind-preserving Wire format.
type Store struct {
	db DB
}

// New creates a Store on top of db.
func New(db DB) *Store {
	return &Store{db: db}
}

const (
	insertSession = `
INSERT INTO sessions (token, id, data, expires_at, last_activity_at, created_at)
VALUES ($1, $2::uuid, $3, $4, $5, $6)`

	selectSession = `
SELECT token, id::text, data, expires_at, last_activity_at, created_at
FROM sessions
WHERE token = $1`

	updateSession = `
UPDATE sessions
SET data = $2, expires_at = $3, last_activity_at = $4
WHERE token = $1`

	deleteSession = `DELETE FROM sessions WHERE token = $1`

	deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at < now()`
)

// Create stores a new session
func (s *Store) Create(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return session.ErrInvalidSession
	}
	data, err := encodeData(sess.Data)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, insertSession,
		sess.Token, sess.ID.String(), data, sess.ExpiresAt, sess.LastActivityAt, sess.CreatedAt)
	if isDuplicateKey(err) {
		return errors.Join(session.ErrInvalidSession, err)
	}
	return err
}

// Get retrieves a session by token
func (s *Store) Get(ctx context.Context, token string) (*session.Session, error) {
	var (
		sess session.Session
		id   string
		data []byte
	)
	err := s.db.QueryRow(ctx, selectSession, token).Scan(
		&sess.Token, &id, &data, &sess.ExpiresAt, &sess.LastActivityAt, &sess.CreatedAt)
	if isNotFound(err) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	if sess.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.Join(session.ErrInvalidSession, err)
	}
	if err := json.Unmarshal(data, &sess.Data); err != nil {
		return nil, errors.Join(session.ErrInvalidSession, err)
	}

	if sess.IsExpired() {
		_, _ = s.db.Exec(ctx, deleteSession, token)
		return nil, session.ErrSessionExpired
	}
	return &sess, nil
}

// Update writes the data and timestamps of an existing session
func (s *Store) Update(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return session.ErrInvalidSession
	}
	data, err := encodeData(sess.Data)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, updateSession, sess.Token, data, sess.ExpiresAt, sess.LastActivityAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session by token
func (s *Store) Delete(ctx context.Context, token string) error {
	_, err := s.db.Exec(ctx, deleteSession, token)
	return err
}

// DeleteExpired removes all expired sessions
func (s *Store) DeleteExpired(ctx context.Context) error {
	_, err := s.db.Exec(ctx, deleteExpiredSessions)
	return err
}

func encodeData(vs input.Values) ([]byte, error) {
	if vs == nil {
		vs = input.Values{}
	}
	data, err := json.Marshal(vs)
	if err != nil {
		return nil, errors.Join(session.ErrInvalidSession, err)
	}
	return data, nil
}
