package mongostore

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/session"
)

// document is the stored form of a session. Data keeps the Wire envelope
// so kinds survive BSON.
type document struct {
	Token          string                `bson:"_id"`
	SessionID      string                `bson:"session_id"`
	Data           map[string]input.Wire `bson:"data"`
	ExpiresAt      time.Time             `bson:"expires_at"`
	LastActivityAt time.Time             `bson:"last_activity_at"`
	CreatedAt      time.Time             `bson:"created_at"`
}

func toDocument(sess *session.Session) document {
	return document{
		Token:          sess.Token,
		SessionID:      sess.ID.String(),
		Data:           sess.Data.Wire(),
		ExpiresAt:      sess.ExpiresAt,
		LastActivityAt: sess.LastActivityAt,
		CreatedAt:      sess.CreatedAt,
	}
}

func (d document) session() (*session.Session, error) {
	id, err := uuid.Parse(d.SessionID)
	if err != nil {
		return nil, errors.Join(session.ErrInvalidSession, err)
	}
	data, err := input.ValuesFromWire(d.Data)
	if err != nil {
		return nil, errors.Join(session.ErrInvalidSession, err)
	}
	return &session.Session{
		ID:             id,
		Token:          d.Token,
		Data:           data,
		ExpiresAt:      d.ExpiresAt,
		LastActivityAt: d.LastActivityAt,
		CreatedAt:      d.CreatedAt,
	}, nil
}
