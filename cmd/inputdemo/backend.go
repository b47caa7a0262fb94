package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/httpserver"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/session"
	"github.com/dmitrymomot/inputkit/pkg/session/boltstore"
	"github.com/dmitrymomot/inputkit/pkg/session/mongostore"
	"github.com/dmitrymomot/inputkit/pkg/session/pgstore"
	"github.com/dmitrymomot/inputkit/pkg/session/redisstore"
)

var errUnknownBackend = errors.New("unknown session backend")

// backend is the session store and locker selected by SESSION_BACKEND.
type backend struct {
	store  session.Store
	locker session.Locker
	checks map[string]httpserver.Check
	close  func()
}

func openBackend(ctx context.Context, name string, cfg session.Config, log *slog.Logger) (*backend, error) {
	log = log.With(logger.Component("session_backend"), slog.String("backend", name))

	switch name {
	case "", "memory":
		store := session.NewMemoryStore(cfg.CleanupInterval)
		return &backend{
			store:  store,
			locker: session.NewMemoryLocker(),
			close:  func() { _ = store.Close() },
		}, nil

	case "redis":
		var rcfg redisstore.Config
		if err := config.Load(&rcfg); err != nil {
			return nil, err
		}
		client, err := redisstore.Connect(ctx, rcfg)
		if err != nil {
			return nil, err
		}
		store, err := redisstore.NewFromConfig(client, rcfg)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		log.InfoContext(ctx, "connected", slog.String("encoding", rcfg.Encoding))
		return &backend{
			store:  store,
			locker: redisstore.NewLockerFromConfig(client, rcfg),
			checks: map[string]httpserver.Check{"redis": redisstore.Healthcheck(client)},
			close:  func() { _ = client.Close() },
		}, nil

	case "bolt":
		var bcfg boltstore.Config
		if err := config.Load(&bcfg); err != nil {
			return nil, err
		}
		store, err := boltstore.OpenFromConfig(bcfg)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "opened", slog.String("path", bcfg.Path))
		return &backend{
			store:  store,
			locker: session.NewMemoryLocker(),
			close:  func() { _ = store.Close() },
		}, nil

	case "postgres":
		var pcfg pgstore.Config
		if err := config.Load(&pcfg); err != nil {
			return nil, err
		}
		pool, err := pgstore.Connect(ctx, pcfg)
		if err != nil {
			return nil, err
		}
		if err := pgstore.Migrate(ctx, pool, pcfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "connected")
		// Locks are process local; run one instance or use redis.
		return &backend{
			store:  pgstore.New(pool),
			locker: session.NewMemoryLocker(),
			checks: map[string]httpserver.Check{"postgres": pgstore.Healthcheck(pool)},
			close:  pool.Close,
		}, nil

	case "mongo":
		var mcfg mongostore.Config
		if err := config.Load(&mcfg); err != nil {
			return nil, err
		}
		client, err := mongostore.Connect(ctx, mcfg)
		if err != nil {
			return nil, err
		}
		store := mongostore.NewFromConfig(client, mcfg)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.InfoContext(ctx, "connected")
		return &backend{
			store:  store,
			locker: session.NewMemoryLocker(),
			checks: map[string]httpserver.Check{"mongo": mongostore.Healthcheck(client)},
			close:  func() { _ = client.Disconnect(context.WithoutCancel(ctx)) },
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownBackend, name)
	}
}
