package input

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Route is the URL path parameter source backed by chi's route context.
// Parameters always resolve to Text. Writes are kept on the source and
// shadow the matched parameters; the router's context is left untouched.
type Route struct {
	*Accessor
}

// RouteFromRequest creates a Route over the parameters chi matched for r.
// Requests not routed by chi yield a Route with no parameters.
func RouteFromRequest(r *http.Request) *Route {
	var params *chi.RouteParams
	if r != nil {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			params = &rctx.URLParams
		}
	}
	return &Route{Accessor: NewAccessor(&routeBackend{params: params, overlay: Values{}})}
}

type routeBackend struct {
	params  *chi.RouteParams
	overlay Values
}

func (b *routeBackend) Has(key string) bool {
	_, ok := b.Lookup(key)
	return ok
}

func (b *routeBackend) Lookup(key string) (Value, bool) {
	if v, ok := b.overlay[key]; ok {
		return v, true
	}
	if b.params == nil {
		return nil, false
	}
	// Later entries win, matching chi.URLParam for nested routers.
	for i := len(b.params.Keys) - 1; i >= 0; i-- {
		if b.params.Keys[i] == key && i < len(b.params.Values) {
			return Text(b.params.Values[i]), true
		}
	}
	return nil, false
}

func (b *routeBackend) Store(key string, v Value) error {
	b.overlay[key] = v
	return nil
}
