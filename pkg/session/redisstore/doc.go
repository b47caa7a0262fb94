// Package redisstore keeps sessions in Redis.
//
// Store implements session.Store with one key per session and a TTL equal
// to the time left until the session expires. Values are encoded with CBOR
// by default, or JSON for easier inspection; both keep the kind of every
// session value.
//
// Locker implements session.Locker with SET NX PX and a compare-and-delete
// script, so requests handled by different processes still take turns on a
// session.
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store, err := redisstore.NewFromConfig(client, cfg)
//	if err != nil {
//	    return err
//	}
//	manager := session.New(
//	    session.WithStore(store),
//	    session.WithLocker(redisstore.NewLockerFromConfig(client, cfg)),
//	    session.WithCookieManager(cookies),
//	)
package redisstore
