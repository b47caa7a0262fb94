// Package mongostore keeps sessions in a MongoDB collection.
//
// Each session is one document whose _id is the session token. Session
// values are stored in the kind-preserving input.Wire form, and
// EnsureIndexes installs a TTL index on expires_at so the server removes
// expired sessions on its own.
//
//	client, err := mongostore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := mongostore.NewFromConfig(client, cfg)
//	if err := store.EnsureIndexes(ctx); err != nil {
//	    return err
//	}
//	manager := session.New(session.WithStore(store), session.WithCookieManager(cookies))
package mongostore
