package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect creates a client and pings the server, retrying up to
// cfg.RetryAttempts times.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for attempt := range attempts {
		opts := options.Client().
			ApplyURI(cfg.ConnectionURL).
			SetRetryWrites(true).
			SetRetryReads(true)
		if cfg.ConnectTimeout > 0 {
			opts.SetConnectTimeout(cfg.ConnectTimeout)
		}
		if cfg.MaxPoolSize > 0 {
			opts.SetMaxPoolSize(cfg.MaxPoolSize)
		}
		if cfg.MinPoolSize > 0 {
			opts.SetMinPoolSize(cfg.MinPoolSize)
		}
		if cfg.MaxConnIdleTime > 0 {
			opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
		}

		client, err := mongo.Connect(opts)
		if err == nil {
			if err = client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrFailedToConnectToMongo, lastErr)
}

// Healthcheck returns a ping check for the health endpoint.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
