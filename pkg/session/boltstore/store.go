package boltstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/dmitrymomot/inputkit/pkg/session"
)

var (
	sessionsBucket = []byte("sessions")

	encMode = mustEncMode()
)

var _ session.Store = (*Store)(nil)

func mustEncMode() cbor.EncMode {
	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("boltstore: cbor encoder: %v", err))
	}
	return enc
}

// Store keeps sessions in a single bbolt file, CBOR encoded and keyed by
// token. The file is locked for the lifetime of the Store; call Close to
// release it.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path.
func Open(path string, timeout time.Duration) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpen, err)
	}

	return &Store{db: db}, nil
}

// OpenFromConfig opens the database described by cfg.
func OpenFromConfig(cfg Config) (*Store, error) {
	return Open(cfg.Path, cfg.OpenTimeout)
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores a new session
func (s *Store) Create(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return session.ErrInvalidSession
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encMode.Marshal(sess)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		if b.Get([]byte(sess.Token)) != nil {
			return session.ErrInvalidSession
		}
		return b.Put([]byte(sess.Token), raw)
	})
}

// Get retrieves a session by token
func (s *Store) Get(ctx context.Context, token string) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sess session.Session
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(sessionsBucket).Get([]byte(token))
		if raw == nil {
			return session.ErrSessionNotFound
		}
		// raw is only valid inside the transaction.
		if err := cbor.Unmarshal(raw, &sess); err != nil {
			return errors.Join(ErrDecode, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sess.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, session.ErrSessionExpired
	}
	return &sess, nil
}

// Update replaces an existing session
func (s *Store) Update(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return session.ErrInvalidSession
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encMode.Marshal(sess)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		if b.Get([]byte(sess.Token)) == nil {
			return session.ErrSessionNotFound
		}
		return b.Put([]byte(sess.Token), raw)
	})
}

// Delete removes a session by token
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(token))
	})
}

// DeleteExpired scans the bucket and removes expired or undecodable sessions.
func (s *Store) DeleteExpired(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)

		var expired [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var sess session.Session
			if err := cbor.Unmarshal(v, &sess); err != nil || sess.IsExpired() {
				expired = append(expired, bytes.Clone(k))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
