package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

// Session is the persisted state behind a session token.
type Session struct {
	ID             uuid.UUID    `json:"id"`
	Token          string       `json:"token"`
	Data           input.Values `json:"data,omitempty"`
	ExpiresAt      time.Time    `json:"expires_at"`
	LastActivityAt time.Time    `json:"last_activity_at"`
	CreatedAt      time.Time    `json:"created_at"`
}

// NewSession creates an empty session that expires after ttl.
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		Data:           input.Values{},
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (input.Value, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	v, ok := s.Data[key]
	return v, ok && v != nil
}

// Set stores a value in session data
func (s *Session) Set(key string, v input.Value) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = input.Values{}
	}
	s.Data[key] = v
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data from the session
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = input.Values{}
}

// Touch updates the last activity time
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now()
}

// Clone returns a deep copy, so stores never share Data with callers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Data = s.Data.Clone()
	if cp.Data == nil {
		cp.Data = input.Values{}
	}
	return &cp
}
