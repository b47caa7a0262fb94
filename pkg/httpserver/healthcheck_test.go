package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/httpserver"
)

func probe(t *testing.T, h http.Handler) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		code, body := probe(t, httpserver.HealthCheckHandler(nil, nil))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "alive", body["status"])
		assert.NotContains(t, body, "checks")
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		code, body := probe(t, httpserver.HealthCheckHandler(nil, map[string]httpserver.Check{
			"session_store": ok,
		}))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ready", body["status"])
		assert.Equal(t, map[string]any{"session_store": "ok"}, body["checks"])
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		code, body := probe(t, httpserver.HealthCheckHandler(nil, map[string]httpserver.Check{
			"session_store": ok,
			"session_lock":  down,
		}))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "not_ready", body["status"])
		assert.Equal(t, map[string]any{"session_store": "ok", "session_lock": "fail"}, body["checks"])
	})
}
