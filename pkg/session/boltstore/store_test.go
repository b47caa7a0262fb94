package boltstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/session"
	"github.com/dmitrymomot/inputkit/pkg/session/boltstore"
)

func openStore(t *testing.T) (*boltstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := boltstore.Open(path, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _ := openStore(t)

	sess := session.NewSession("token-1", time.Hour)
	sess.Set("count", input.Int(5))
	sess.Set("seen", input.At(time.Date(2024, 1, 15, 10, 30, 0, 123, time.UTC)))
	require.NoError(t, store.Create(ctx, sess))
	assert.ErrorIs(t, store.Create(ctx, sess), session.ErrInvalidSession)

	got, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Data, got.Data)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	got.Set("count", input.Int(6))
	require.NoError(t, store.Update(ctx, got))
	got, err = store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, input.Int(6), got.Data["count"])

	require.NoError(t, store.Delete(ctx, "token-1"))
	_, err = store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.ErrorIs(t, store.Update(ctx, got), session.ErrSessionNotFound)
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _ := openStore(t)

	live := session.NewSession("live", time.Hour)
	stale := session.NewSession("stale", time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	gone := session.NewSession("gone", time.Hour)
	gone.ExpiresAt = time.Now().Add(-time.Minute)
	for _, s := range []*session.Session{live, stale, gone} {
		require.NoError(t, store.Create(ctx, s))
	}

	_, err := store.Get(ctx, "stale")
	assert.ErrorIs(t, err, session.ErrSessionExpired)
	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, session.ErrSessionNotFound, "expired sessions are removed on read")

	require.NoError(t, store.DeleteExpired(ctx))
	_, err = store.Get(ctx, "gone")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := boltstore.Open(path, time.Second)
	require.NoError(t, err)
	sess := session.NewSession("token", time.Hour)
	sess.Set("tags", input.Array{input.Text("a"), input.Float(1.5)})
	require.NoError(t, store.Create(ctx, sess))
	require.NoError(t, store.Close())

	store, err = boltstore.OpenFromConfig(boltstore.Config{Path: path, OpenTimeout: time.Second})
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, sess.Data, got.Data)
}

func TestStore_CancelledContext(t *testing.T) {
	t.Parallel()
	store, _ := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, context.Canceled)
}
