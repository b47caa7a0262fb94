package fingerprint

import (
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
)

// Middleware computes the request fingerprint once and stores it in the
// request context.
func Middleware(res *clientip.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), Generate(r, res))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
