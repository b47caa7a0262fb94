package input

import "context"

type (
	queryContextKey struct{}
	bodyContextKey  struct{}
	routeContextKey struct{}
)

// WithQuery adds a Query source to the context
func WithQuery(ctx context.Context, q *Query) context.Context {
	return context.WithValue(ctx, queryContextKey{}, q)
}

// QueryFromContext retrieves the Query source from the context
func QueryFromContext(ctx context.Context) (*Query, bool) {
	q, ok := ctx.Value(queryContextKey{}).(*Query)
	return q, ok
}

// WithBody adds a Body source to the context
func WithBody(ctx context.Context, b *Body) context.Context {
	return context.WithValue(ctx, bodyContextKey{}, b)
}

// BodyFromContext retrieves the Body source from the context
func BodyFromContext(ctx context.Context) (*Body, bool) {
	b, ok := ctx.Value(bodyContextKey{}).(*Body)
	return b, ok
}

// WithRoute adds a Route source to the context
func WithRoute(ctx context.Context, r *Route) context.Context {
	return context.WithValue(ctx, routeContextKey{}, r)
}

// RouteFromContext retrieves the Route source from the context
func RouteFromContext(ctx context.Context) (*Route, bool) {
	r, ok := ctx.Value(routeContextKey{}).(*Route)
	return r, ok
}
