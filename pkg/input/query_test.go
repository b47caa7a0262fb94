package input_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

func TestQueryFromRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?page=2&tag=a&tag=b&ids%5B%5D=1&q=", nil)
	q := input.QueryFromRequest(r)

	page, err := q.GetAsInt("page")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page)

	_, err = q.GetInt("page")
	assert.ErrorIs(t, err, input.ErrTypeMismatch)

	tags, err := q.GetArray("tag")
	require.NoError(t, err)
	assert.Equal(t, input.Array{input.Text("a"), input.Text("b")}, tags)

	ids, err := q.GetArray("ids")
	require.NoError(t, err)
	assert.Equal(t, input.Array{input.Text("1")}, ids)

	assert.True(t, q.Has("q"))
	s, err := q.GetString("q", "unused")
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = q.Get("missing", nil)
	require.Error(t, err)
	assert.Equal(t, "the key missing is missing", err.Error())
}

func TestQuery_SetRoundTrip(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	q := input.NewQuery(values)

	require.NoError(t, q.SetInt("limit", 10))
	limit, err := q.GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, int64(10), limit)
	assert.Equal(t, "10", values.Get("limit"))

	require.NoError(t, q.SetArray("tags", input.Array{input.Text("x"), input.Int(2)}))
	assert.Equal(t, []string{"x", "2"}, values["tags"])
	assert.Equal(t, values, q.Values())
}

func TestQueryFromRequest_Nil(t *testing.T) {
	t.Parallel()

	q := input.QueryFromRequest(nil)
	assert.False(t, q.Has("anything"))
	assert.NotNil(t, q.Values())
}
