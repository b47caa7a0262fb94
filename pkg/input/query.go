package input

import (
	"net/http"
	"net/url"
)

// Query is the query-string parameter source.
// A single value resolves to Text; repeated keys and "key[]" keys resolve
// to an Array of Text.
type Query struct {
	*Accessor
	values url.Values
}

// NewQuery creates a Query over values. Writes are visible in values.
func NewQuery(values url.Values) *Query {
	b := newFormBackend(values)
	return &Query{Accessor: NewAccessor(b), values: b.form}
}

// QueryFromRequest creates a Query over the request's parsed query string.
func QueryFromRequest(r *http.Request) *Query {
	if r == nil || r.URL == nil {
		return NewQuery(nil)
	}
	return NewQuery(r.URL.Query())
}

// Values returns the underlying parameter map.
func (q *Query) Values() url.Values {
	return q.values
}
