package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("query")))
		log.Info("msg")
		assert.Equal(t, "query", decode(t, buf)["component"])
	})

	t.Run("context value", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key{}))
		ctx := context.WithValue(context.Background(), key{}, "req-1")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "req-1", decode(t, buf)["request_id"])
	})

	t.Run("context extractor survives With", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("trace", "t-1"), true
			}),
		).With(logger.Key("token"))
		log.InfoContext(context.Background(), "msg")

		entry := decode(t, buf)
		assert.Equal(t, "t-1", entry["trace"])
		assert.Equal(t, "token", entry["key"])
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantEnv   string
		wantDebug bool
	}{
		{name: "development", env: "development", wantEnv: logger.Development, wantDebug: true},
		{name: "unknown falls back to development", env: "local", wantEnv: logger.Development, wantDebug: true},
		{name: "staging alias", env: "stage", wantEnv: logger.Staging},
		{name: "production alias", env: "PROD", wantEnv: logger.Production},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tt.env, "svc"), logger.WithOutput(buf))
			log.Debug("debug")
			log.Info("info")

			out := buf.String()
			assert.Contains(t, out, "svc")
			assert.Contains(t, out, tt.wantEnv)
			if tt.wantDebug {
				assert.Contains(t, out, "DEBUG")
			} else {
				assert.NotContains(t, out, "DEBUG")
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewFromConfig(logger.Config{
		Env:     "development",
		Service: "demo",
		Level:   "warn",
		Format:  logger.FormatJSON,
	}, logger.WithOutput(buf))

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	entry := decode(t, buf)
	assert.Equal(t, "demo", entry["service"])
	assert.Equal(t, "development", entry["env"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("nothing happens")
}
