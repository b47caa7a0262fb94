package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/inputkit/pkg/session"
)

var _ session.Store = (*Store)(nil)

// Store keeps one document per session, keyed by token.
type Store struct {
	coll *mongo.Collection
}

// New creates a Store on top of coll.
func New(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// NewFromConfig uses the database and collection named in cfg.
func NewFromConfig(client *mongo.Client, cfg Config) *Store {
	name := cfg.Collection
	if name == "" {
		name = "sessions"
	}
	return New(client.Database(cfg.Database).Collection(name))
}

// EnsureIndexes creates the TTL index that lets MongoDB drop expired
// sessions in the background.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return errors.Join(ErrFailedToCreateIndex, err)
	}
	return nil
}

// Create stores a new session
func (s *Store) Create(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return session.ErrInvalidSession
	}
	_, err := s.coll.InsertOne(ctx, toDocument(sess))
	if mongo.IsDuplicateKeyError(err) {
		return errors.Join(session.ErrInvalidSession, err)
	}
	return err
}

// Get retrieves a session by token
func (s *Store) Get(ctx context.Context, token string) (*session.Session, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: token}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	sess, err := doc.session()
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		_, _ = s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: token}})
		return nil, session.ErrSessionExpired
	}
	return sess, nil
}

// Update replaces an existing session
func (s *Store) Update(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return session.ErrInvalidSession
	}
	res, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: sess.Token}}, toDocument(sess))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session by token
func (s *Store) Delete(ctx context.Context, token string) error {
	_, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: token}})
	return err
}

// DeleteExpired removes expired sessions the TTL monitor has not reached yet
func (s *Store) DeleteExpired(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.D{{Key: "expires_at", Value: bson.D{{Key: "$lt", Value: time.Now()}}}})
	return err
}
