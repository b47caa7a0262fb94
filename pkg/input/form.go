package input

import (
	"net/url"
)

// formBackend serves a url.Values map owned by the request.
// Writes go to a typed overlay so values round-trip with their kind, and are
// mirrored into the form as text for code that reads the map directly.
// A key "tags" also resolves "tags[]" entries, always as an Array.
type formBackend struct {
	form    url.Values
	overlay Values
}

func newFormBackend(form url.Values) *formBackend {
	if form == nil {
		form = url.Values{}
	}
	return &formBackend{form: form, overlay: Values{}}
}

func (b *formBackend) Has(key string) bool {
	_, ok := b.Lookup(key)
	return ok
}

func (b *formBackend) Lookup(key string) (Value, bool) {
	if v, ok := b.overlay[key]; ok {
		return v, true
	}
	if vals, ok := b.form[key+"[]"]; ok {
		return textArray(vals), true
	}
	vals, ok := b.form[key]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	if len(vals) == 1 {
		return Text(vals[0]), true
	}
	return textArray(vals), true
}

func (b *formBackend) Store(key string, v Value) error {
	b.overlay[key] = v
	delete(b.form, key+"[]")
	if arr, ok := v.(Array); ok {
		vals := make([]string, len(arr))
		for i, item := range arr {
			vals[i] = AsString(item)
		}
		b.form[key] = vals
		return nil
	}
	b.form.Set(key, AsString(v))
	return nil
}

func textArray(vals []string) Array {
	arr := make(Array, len(vals))
	for i, s := range vals {
		arr[i] = Text(s)
	}
	return arr
}
