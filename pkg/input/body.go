package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultMaxMemory is the memory limit used when parsing multipart forms (10MB).
	DefaultMaxMemory = 10 << 20

	// DefaultMaxJSONSize is the largest JSON body BodyFromRequest accepts (1MB).
	DefaultMaxJSONSize = 1 << 20
)

const postData = "POST data"

// Body is the request body parameter source.
// Form bodies follow the same rules as Query. JSON object bodies map
// strings to Text, integral numbers to Int, other numbers to Float, booleans
// to Bool and arrays to Array; nested objects are kept as compact JSON Text
// and null members are absent.
type Body struct {
	*Accessor
	backend *formBackend
}

// NewBody creates a Body over already parsed form values.
func NewBody(form url.Values) *Body {
	b := newFormBackend(form)
	return &Body{
		Accessor: NewAccessor(b, WithMissingIn(postData)),
		backend:  b,
	}
}

// BodyFromRequest parses the request body according to its content type.
// Requests without a body or content type yield an empty Body.
func BodyFromRequest(r *http.Request) (*Body, error) {
	if r == nil || r.Body == nil || r.Body == http.NoBody {
		return NewBody(nil), nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return NewBody(nil), nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type: %v", ErrInvalidBody, err)
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		return NewBody(r.PostForm), nil

	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		if r.MultipartForm == nil {
			return NewBody(nil), nil
		}
		return NewBody(url.Values(r.MultipartForm.Value)), nil

	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		values, err := decodeJSONObject(r.Body)
		if err != nil {
			return nil, err
		}
		body := NewBody(nil)
		for k, v := range values {
			body.backend.overlay[k] = v
		}
		return body, nil

	default:
		return nil, fmt.Errorf("%w: unsupported media type %s", ErrInvalidBody, mediaType)
	}
}

func decodeJSONObject(r io.Reader) (Values, error) {
	data, err := io.ReadAll(io.LimitReader(r, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrInvalidBody, err)
	}
	if len(data) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidBody, DefaultMaxJSONSize)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Values{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}

	out := make(Values, len(raw))
	for k, item := range raw {
		v, err := fromJSON(item)
		if err != nil {
			return nil, fmt.Errorf("%w: key %s: %v", ErrInvalidBody, k, err)
		}
		if v != nil {
			out[k] = v
		}
	}
	return out, nil
}

func fromJSON(item any) (Value, error) {
	switch x := item.(type) {
	case nil:
		return nil, nil
	case string:
		return Text(x), nil
	case bool:
		return Bool(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case []any:
		arr := make(Array, 0, len(x))
		for _, elem := range x {
			v, err := fromJSON(elem)
			if err != nil {
				return nil, err
			}
			if v != nil {
				arr = append(arr, v)
			}
		}
		return arr, nil
	case map[string]any:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(x); err != nil {
			return nil, err
		}
		return Text(strings.TrimSuffix(buf.String(), "\n")), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, item)
	}
}
