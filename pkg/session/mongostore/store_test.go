package mongostore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/session"
	"github.com/dmitrymomot/inputkit/pkg/session/mongostore"
)

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongostore.Connect(context.Background(), mongostore.Config{})
	assert.ErrorIs(t, err, mongostore.ErrEmptyConnectionURL)
}

func TestStore_Integration(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := mongostore.Config{
		ConnectionURL: url,
		Database:      "inputkit_test",
		Collection:    "sessions_" + uuid.NewString()[:8],
		RetryAttempts: 1,
		RetryInterval: time.Second,
	}
	client, err := mongostore.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database(cfg.Database).Collection(cfg.Collection).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	require.NoError(t, mongostore.Healthcheck(client)(ctx))

	store := mongostore.NewFromConfig(client, cfg)
	require.NoError(t, store.EnsureIndexes(ctx))

	sess := session.NewSession(uuid.NewString(), time.Hour)
	sess.Set("count", input.Int(3))
	require.NoError(t, store.Create(ctx, sess))
	assert.ErrorIs(t, store.Create(ctx, sess), session.ErrInvalidSession)

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, input.Int(3), got.Data["count"])

	got.Set("count", input.Int(4))
	require.NoError(t, store.Update(ctx, got))
	got, err = store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, input.Int(4), got.Data["count"])

	missing := session.NewSession(uuid.NewString(), time.Hour)
	assert.ErrorIs(t, store.Update(ctx, missing), session.ErrSessionNotFound)

	expired := session.NewSession(uuid.NewString(), time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Create(ctx, expired))
	_, err = store.Get(ctx, expired.Token)
	assert.ErrorIs(t, err, session.ErrSessionExpired)

	require.NoError(t, store.DeleteExpired(ctx))
	require.NoError(t, store.Delete(ctx, sess.Token))
	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
