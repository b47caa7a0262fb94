package session

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

// Middleware opens the session for every request, stores the source in
// the request context and closes it once the handler returns.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		src, err := m.Open(r.Context(), w, r)
		if err != nil {
			m.log.ErrorContext(r.Context(), "failed to open session", logger.Error(err))
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		defer func() {
			ctx := context.WithoutCancel(r.Context())
			if err := src.Close(ctx); err != nil {
				m.log.ErrorContext(ctx, "failed to close session",
					logger.SessionID(src.GetSessionID()),
					logger.Error(err),
				)
			}
		}()

		next.ServeHTTP(w, r.WithContext(WithSource(r.Context(), src)))
	})
}
