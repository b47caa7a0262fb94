package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("input", logger.Key("page"), logger.Source("query"))
	require.Equal(t, "input", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "key", g[0].Key)
	assert.Equal(t, "source", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSessionID(t *testing.T) {
	attr := logger.SessionID("abc")
	require.Equal(t, "session_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))
}

func TestRemoteAddr(t *testing.T) {
	attr := logger.RemoteAddr("10.0.0.1")
	assert.Equal(t, "remote_addr", attr.Key)
	assert.Equal(t, "10.0.0.1", attr.Value.String())
}
