// Package fingerprint hashes the request metadata a session is bound to.
//
// Generate resolves the client address (through a clientip.Resolver) and
// reads the User-Agent header, substituting UnknownRemoteAddress and
// UnknownUserAgent when they are missing, and returns both as hex SHA-256
// digests. Sessions store these digests as validity markers and compare
// them with Equal on every request; raw addresses and agents are never
// persisted.
//
//	fp := fingerprint.Generate(r, clientip.New())
//	if !fingerprint.Equal(stored, fp.UserAgent) {
//	    // session was opened by a different client
//	}
//
// Middleware computes the fingerprint once per request and stores it in
// the context for FromContext.
package fingerprint
