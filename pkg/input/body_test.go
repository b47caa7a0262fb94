package input_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

func TestBodyFromRequest_Form(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"ann"}, "age": {"33"}, "roles[]": {"admin", "dev"}}
	r := httptest.NewRequest(http.MethodPost, "/?name=query", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := input.BodyFromRequest(r)
	require.NoError(t, err)

	name, err := body.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "ann", name)

	age, err := body.GetAsInt("age")
	require.NoError(t, err)
	assert.Equal(t, int64(33), age)

	roles, err := body.GetArray("roles")
	require.NoError(t, err)
	assert.Equal(t, input.Array{input.Text("admin"), input.Text("dev")}, roles)
}

func TestBodyFromRequest_Multipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "report"))
	require.NoError(t, mw.WriteField("count", "3"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := input.BodyFromRequest(r)
	require.NoError(t, err)

	title, err := body.GetString("title")
	require.NoError(t, err)
	assert.Equal(t, "report", title)

	count, err := body.GetAsInt("count")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestBodyFromRequest_JSON(t *testing.T) {
	t.Parallel()

	payload := `{"name":"ann","n":5,"f":1.5,"ok":true,"tags":["a",1,null],"meta":{"a":1},"gone":null}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	body, err := input.BodyFromRequest(r)
	require.NoError(t, err)

	n, err := body.GetInt("n")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	f, err := body.GetFloat("f")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-9)

	ok, err := body.GetBool("ok")
	require.NoError(t, err)
	assert.True(t, ok)

	tags, err := body.GetArray("tags")
	require.NoError(t, err)
	assert.Equal(t, input.Array{input.Text("a"), input.Int(1)}, tags)

	meta, err := body.GetString("meta")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, meta)

	assert.False(t, body.Has("gone"))
}

func TestBodyFromRequest_Empty(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	body, err := input.BodyFromRequest(r)
	require.NoError(t, err)
	assert.False(t, body.Has("x"))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=1"))
	body, err = input.BodyFromRequest(r)
	require.NoError(t, err)
	assert.False(t, body.Has("a"))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/json")
	body, err = input.BodyFromRequest(r)
	require.NoError(t, err)
	assert.False(t, body.Has("a"))
}

func TestBodyFromRequest_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"malformed json", "application/json", `{"a":`},
		{"json array", "application/json", `[1,2]`},
		{"trailing data", "application/json", `{"a":1} {"b":2}`},
		{"unsupported type", "text/plain", "hello"},
		{"malformed content type", "application/json; =", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)

			_, err := input.BodyFromRequest(r)
			assert.ErrorIs(t, err, input.ErrInvalidBody)
		})
	}
}

func TestBody_MissingMessageAndWrites(t *testing.T) {
	t.Parallel()

	body := input.NewBody(nil)
	_, err := body.Get("email", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrMissingKey)
	assert.Equal(t, "the key email was not found in the POST data", err.Error())

	require.NoError(t, body.SetFloat("price", 9.5))
	price, err := body.GetFloat("price")
	require.NoError(t, err)
	assert.InDelta(t, 9.5, price, 1e-9)
}

func TestBodyFromRequest_JSONTooLarge(t *testing.T) {
	t.Parallel()

	payload := `{"k":"` + strings.Repeat("a", input.DefaultMaxJSONSize) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")

	_, err := input.BodyFromRequest(r)
	assert.ErrorIs(t, err, input.ErrInvalidBody)

	limit := `{"k":"` + strings.Repeat("a", input.DefaultMaxJSONSize-10) + `"}`
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(limit))
	r.Header.Set("Content-Type", "application/json")

	body, err := input.BodyFromRequest(r)
	require.NoError(t, err)
	k, err := body.GetString("k")
	require.NoError(t, err)
	assert.Len(t, k, input.DefaultMaxJSONSize-10)
}
