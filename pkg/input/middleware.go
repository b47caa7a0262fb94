package input

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report unparsable bodies.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware attaches Query, Body and Route sources to every request
// context. A body that cannot be parsed is logged and replaced by an empty
// Body so handlers still get a source.
//
// The Route source reads chi's route context lazily, so it sees parameters
// matched after this middleware ran.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{logger: logger.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := BodyFromRequest(r)
			if err != nil {
				cfg.logger.WarnContext(r.Context(), "failed to parse request body",
					slog.String("content_type", r.Header.Get("Content-Type")),
					logger.Error(err),
				)
				body = NewBody(nil)
			}

			ctx := WithQuery(r.Context(), QueryFromRequest(r))
			ctx = WithBody(ctx, body)
			ctx = WithRoute(ctx, RouteFromRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
