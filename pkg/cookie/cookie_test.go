package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/cookie"
)

const (
	secretA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	secretB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{"no secrets", nil, cookie.ErrNoSecret},
		{"only empty secrets", []string{"", ""}, cookie.ErrNoSecret},
		{"short secret", []string{"short"}, cookie.ErrSecretTooShort},
		{"valid", []string{secretA}, nil},
		{"rotation", []string{secretA, "", secretB}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := cookie.New(tt.secrets)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secretA}, cookie.WithSecure(true))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "theme", "dark", cookie.WithMaxAge(60), cookie.WithDomain("example.com"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	v, err := m.Get(roundTrip(w), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "theme")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secretA}, cookie.WithPath("/app"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Delete(w, "sid")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, "/app", cookies[0].Path)
}

func TestManager_Encrypted(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, m.SetEncrypted(w, "sid", "token-value"))

		raw := w.Result().Cookies()[0].Value
		assert.NotContains(t, raw, "token-value")

		v, err := m.GetEncrypted(roundTrip(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-value", v)
	})

	t.Run("fresh nonce per write", func(t *testing.T) {
		t.Parallel()
		w1, w2 := httptest.NewRecorder(), httptest.NewRecorder()
		require.NoError(t, m.SetEncrypted(w1, "sid", "same"))
		require.NoError(t, m.SetEncrypted(w2, "sid", "same"))
		assert.NotEqual(t, w1.Result().Cookies()[0].Value, w2.Result().Cookies()[0].Value)
	})

	t.Run("plain value rejected", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "not base64!"})
		_, err := m.GetEncrypted(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("tampered value rejected", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, m.SetEncrypted(w, "sid", "token-value"))
		c := w.Result().Cookies()[0]
		mid := len(c.Value) / 2
		repl := "A"
		if c.Value[mid] == 'A' {
			repl = "B"
		}
		c.Value = c.Value[:mid] + repl + c.Value[mid+1:]

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c)
		_, err := m.GetEncrypted(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrDecryptionFailed)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := m.GetEncrypted(httptest.NewRequest(http.MethodGet, "/", nil), "sid")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{secretB})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{secretA, secretB})
	require.NoError(t, err)
	other, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, old.SetEncrypted(w, "sid", "v1"))

	v, err := rotated.GetEncrypted(roundTrip(w), "sid")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	_, err = other.GetEncrypted(roundTrip(w), "sid")
	assert.ErrorIs(t, err, cookie.ErrDecryptionFailed)
}

func TestNewFromConfig(t *testing.T) {
	t.Setenv("COOKIE_SECRETS", " "+secretA+" , "+secretB)
	t.Setenv("COOKIE_DOMAIN", "example.com")
	t.Setenv("COOKIE_SECURE", "true")

	var cfg cookie.Config
	require.NoError(t, env.Parse(&cfg))
	assert.Equal(t, "/", cfg.Path)
	assert.True(t, cfg.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite)

	m, err := cookie.NewFromConfig(cfg, cookie.WithPath("/api"))
	require.NoError(t, err)

	d := m.Defaults()
	assert.Equal(t, "/api", d.Path)
	assert.Equal(t, "example.com", d.Domain)
	assert.True(t, d.Secure)

	_, err = cookie.NewFromConfig(cookie.Config{Secrets: strings.Repeat(" ,", 3)})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
