package redisstore_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/inputkit/pkg/session"
)

const tokenHeader = "X-Session"

var headerTransport = session.NewHeaderTransport(tokenHeader, session.WithHeaderPrefix(""))

// openSession opens a session for a fixed client, presenting prev's token
// when prev is not nil.
func openSession(ctx context.Context, m *session.Manager, prev *session.Source) (*session.Source, error) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("User-Agent", "redisstore-test")
	if prev != nil {
		r.Header.Set(tokenHeader, prev.Token())
	}
	return m.Open(ctx, httptest.NewRecorder(), r)
}
