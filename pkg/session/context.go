package session

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

type sourceContextKey struct{}

// WithSource adds a session source to the context
func WithSource(ctx context.Context, src *Source) context.Context {
	return context.WithValue(ctx, sourceContextKey{}, src)
}

// FromContext retrieves the session source from the context
func FromContext(ctx context.Context) (*Source, bool) {
	src, ok := ctx.Value(sourceContextKey{}).(*Source)
	return src, ok
}

// MustFromContext retrieves the session source from the context or panics
func MustFromContext(ctx context.Context) *Source {
	src, ok := FromContext(ctx)
	if !ok {
		panic(ErrNotInContext)
	}
	return src
}

// LoggerExtractor adds the ID of the session in context to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		src, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.SessionID(src.GetSessionID()), true
	}
}
