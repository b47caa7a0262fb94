package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const minSecretLength = 32

// Manager writes and reads cookies with shared default attributes.
// Encrypted values are sealed with AES-256-GCM under the first secret
// and opened with any of them, so secrets can be rotated.
type Manager struct {
	aeads    []cipher.AEAD
	defaults Attributes
}

// New creates a Manager. Empty secrets are ignored; the remaining ones
// must be at least 32 characters long.
func New(secrets []string, opts ...Option) (*Manager, error) {
	m := &Manager{
		defaults: Attributes{
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}.with(opts),
	}

	for i, s := range secrets {
		if s == "" {
			continue
		}
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		aead, err := newAEAD(s)
		if err != nil {
			return nil, err
		}
		m.aeads = append(m.aeads, aead)
	}
	if len(m.aeads) == 0 {
		return nil, ErrNoSecret
	}
	return m, nil
}

// Defaults returns the attributes applied when a call passes no options.
func (m *Manager) Defaults() Attributes {
	return m.defaults
}

// Set writes a plain cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	http.SetCookie(w, m.defaults.with(opts).cookie(name, value))
}

// Get returns the raw value of the named cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return "", ErrCookieNotFound
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie. Options must match the ones the cookie
// was written with for the browser to drop it.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	c := m.defaults.with(opts).cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// SetEncrypted seals value and writes it as a cookie.
func (m *Manager) SetEncrypted(w http.ResponseWriter, name, value string, opts ...Option) error {
	sealed, err := m.seal([]byte(value))
	if err != nil {
		return err
	}
	m.Set(w, name, sealed, opts...)
	return nil
}

// GetEncrypted reads and opens a cookie written by SetEncrypted.
func (m *Manager) GetEncrypted(r *http.Request, name string) (string, error) {
	sealed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	plain, err := m.open(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func newAEAD(secret string) (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (m *Manager) seal(plain []byte) (string, error) {
	aead := m.aeads[0]
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(aead.Seal(nonce, nonce, plain, nil)), nil
}

func (m *Manager) open(sealed string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	for _, aead := range m.aeads {
		n := aead.NonceSize()
		if len(raw) < n+aead.Overhead() {
			return nil, ErrInvalidFormat
		}
		if plain, err := aead.Open(nil, raw[:n], raw[n:], nil); err == nil {
			return plain, nil
		}
	}
	return nil, ErrDecryptionFailed
}
