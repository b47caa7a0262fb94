package session

import (
	"net/http"
	"time"
)

// Transport moves the session token between the client and the Manager.
// Implementations: CookieTransport, HeaderTransport, CompositeTransport.
type Transport interface {
	// GetToken reads the token carried by r. It returns ErrSessionNotFound
	// when r has none.
	GetToken(r *http.Request) (string, error)

	// SetToken hands token to the client; ttl is how long the client
	// should keep it.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken tells the client to forget its token.
	ClearToken(w http.ResponseWriter) error
}
