// Package clientip resolves the client IP address of an HTTP request.
//
// A Resolver consults an ordered list of trusted proxy headers and falls
// back to the connection's RemoteAddr. Every result is validated with
// net.ParseIP and returned in normalized form; invalid values are skipped.
//
//	res := clientip.New("CF-Connecting-IP", "X-Forwarded-For")
//	ip := res.IP(r)
//
// Behind Cloudflare, for example, trust CF-Connecting-IP and nothing else.
// Session validity markers should use a Resolver configured with only the
// headers your edge proxy sets.
//
// Resolver.Middleware stores the resolved IP in the request context where
// GetIPFromContext and LoggerExtractor can read it.
package clientip
