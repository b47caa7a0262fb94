package session

import (
	"errors"
	"net/http"
	"time"
)

// CompositeTransport reads the token from the first transport that has one
// and writes it through all of them.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a composite transport
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

// GetToken extracts session token from first successful transport
func (t *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, transport := range t.transports {
		if token, err := transport.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}

// SetToken sends session token via all configured transports
func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	errs := make([]error, 0, len(t.transports))
	for _, transport := range t.transports {
		errs = append(errs, transport.SetToken(w, token, ttl))
	}
	return errors.Join(errs...)
}

// ClearToken removes session token from all configured transports
func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	errs := make([]error, 0, len(t.transports))
	for _, transport := range t.transports {
		errs = append(errs, transport.ClearToken(w))
	}
	return errors.Join(errs...)
}
