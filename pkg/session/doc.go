// Package session provides server-side sessions exposed as an input.Source.
//
// A Manager opens the session for a request, hands it out as a *Source and
// keeps it locked until the source is paused or closed, so concurrent
// requests for the same session are serialized. Storage, locking and token
// transport are pluggable.
//
// # Architecture
//
//	┌────────┐   token   ┌────────────┐
//	│ Client │ ────────► │  Transport │  encrypted cookie, header, composite
//	└────────┘           └────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────┐
//	│            Manager              │──► Locker (memory, redis)
//	└─────────────────────────────────┘
//	       │   load / save
//	       ▼
//	┌────────┐
//	│ Store  │ memory, boltstore, redisstore, pgstore, mongostore
//	└────────┘
//
// # Usage
//
//	cookies, err := cookie.New([]string{secret})
//	if err != nil {
//	    return err
//	}
//	manager := session.New(
//	    session.WithCookieManager(cookies),
//	    session.WithIdleTimeout(time.Hour),
//	)
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext(r.Context())
//	    visits, _ := sess.GetAsInt("visits", 0)
//	    _ = sess.SetInt("visits", visits+1)
//	})
//
// Long-running handlers can let other requests for the same session through:
//
//	_ = sess.Pause(ctx)   // persist and unlock
//	slowWork()
//	_ = sess.Resume(ctx)  // relock and reload
//
// # Validity
//
// Every session the Manager starts carries four markers: a server-generated
// flag, the hashed client address, the hashed user agent and the expiry.
// Open rejects a session whose markers are missing or do not match the
// current request (see Source.IsValid) and starts a new one. The rejected
// record stays in the store untouched.
//
// # Errors
//
//   - ErrSessionNotFound  no session for the token
//   - ErrSessionExpired   session passed its expiry
//   - ErrInvalidSession   markers missing or mismatched
//   - ErrSessionPaused    Get or Set on a paused source
//   - ErrSessionClosed    use of a closed or destroyed source
//   - ErrLockFailed       session stayed busy for LockTimeout
package session
