package fingerprint

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
)

// Fallbacks hashed when the request does not carry the value.
const (
	UnknownRemoteAddress = "localhost"
	UnknownUserAgent     = "Unknown HTTP User Agent"
)

// Fingerprint holds the hashed request metadata a session is bound to.
type Fingerprint struct {
	RemoteAddress string
	UserAgent     string
}

// Hash returns the hex SHA-256 digest of value.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Generate hashes the client address and user agent of r. The address is
// resolved with res, or with clientip.New() (RemoteAddr only) when res is nil.
func Generate(r *http.Request, res *clientip.Resolver) Fingerprint {
	if res == nil {
		res = clientip.New()
	}

	addr := res.IP(r)
	if addr == "" {
		addr = UnknownRemoteAddress
	}
	ua := r.UserAgent()
	if ua == "" {
		ua = UnknownUserAgent
	}

	return Fingerprint{
		RemoteAddress: Hash(addr),
		UserAgent:     Hash(ua),
	}
}

// Equal compares two hashes in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
