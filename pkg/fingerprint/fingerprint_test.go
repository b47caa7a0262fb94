package fingerprint_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
	"github.com/dmitrymomot/inputkit/pkg/fingerprint"
)

func newRequest(remoteAddr, userAgent string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remoteAddr
	if userAgent != "" {
		r.Header.Set("User-Agent", userAgent)
	}
	return r
}

func TestHash(t *testing.T) {
	h := fingerprint.Hash("127.0.0.1")
	assert.Len(t, h, 64)
	assert.Regexp(t, "^[a-f0-9]{64}$", h)
	assert.Equal(t, h, fingerprint.Hash("127.0.0.1"))
	assert.NotEqual(t, h, fingerprint.Hash("127.0.0.2"))
}

func TestGenerate(t *testing.T) {
	t.Run("hashes address and agent", func(t *testing.T) {
		fp := fingerprint.Generate(newRequest("192.0.2.1:4000", "curl/8.0"), nil)
		assert.Equal(t, fingerprint.Hash("192.0.2.1"), fp.RemoteAddress)
		assert.Equal(t, fingerprint.Hash("curl/8.0"), fp.UserAgent)
	})

	t.Run("port does not change the fingerprint", func(t *testing.T) {
		a := fingerprint.Generate(newRequest("192.0.2.1:4000", "ua"), nil)
		b := fingerprint.Generate(newRequest("192.0.2.1:5000", "ua"), nil)
		assert.Equal(t, a, b)
	})

	t.Run("fallbacks", func(t *testing.T) {
		fp := fingerprint.Generate(newRequest("", ""), nil)
		assert.Equal(t, fingerprint.Hash(fingerprint.UnknownRemoteAddress), fp.RemoteAddress)
		assert.Equal(t, fingerprint.Hash(fingerprint.UnknownUserAgent), fp.UserAgent)
	})

	t.Run("uses the resolver", func(t *testing.T) {
		r := newRequest("10.0.0.1:80", "ua")
		r.Header.Set("X-Real-IP", "198.51.100.4")

		fp := fingerprint.Generate(r, clientip.New("X-Real-IP"))
		assert.Equal(t, fingerprint.Hash("198.51.100.4"), fp.RemoteAddress)

		untrusted := fingerprint.Generate(r, nil)
		assert.Equal(t, fingerprint.Hash("10.0.0.1"), untrusted.RemoteAddress)
	})
}

func TestEqual(t *testing.T) {
	h := fingerprint.Hash("x")
	assert.True(t, fingerprint.Equal(h, fingerprint.Hash("x")))
	assert.False(t, fingerprint.Equal(h, fingerprint.Hash("y")))
	assert.False(t, fingerprint.Equal(h, ""))
}

func TestMiddleware(t *testing.T) {
	var (
		got fingerprint.Fingerprint
		ok  bool
	)
	handler := fingerprint.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = fingerprint.FromContext(r.Context())
	}))

	r := newRequest("192.0.2.8:1", "agent")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.True(t, ok)
	assert.Equal(t, fingerprint.Generate(r, nil), got)
}
