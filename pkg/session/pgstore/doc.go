// Package pgstore keeps sessions in PostgreSQL.
//
// Migrate creates the sessions table from migrations embedded in the
// binary, using goose over the pgx pool. Store implements session.Store
// on top of any DB, usually a *pgxpool.Pool:
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pgstore.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//	manager := session.New(session.WithStore(pgstore.New(pool)), session.WithCookieManager(cookies))
//
// Expired rows are removed on read and by DeleteExpired, which callers
// schedule themselves. Locking is left to the session.Locker in use.
package pgstore
