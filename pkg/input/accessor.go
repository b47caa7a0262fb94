package input

import (
	"errors"
	"fmt"
	"time"
)

var _ Source = (*Accessor)(nil)

// Accessor implements Source on top of a Backend.
// Concrete sources embed *Accessor and provide the backend.
type Accessor struct {
	backend Backend
	missing func(key string) error
	guard   func() error
}

// AccessorOption configures an Accessor.
type AccessorOption func(*Accessor)

// WithMissing overrides the error returned for absent keys.
func WithMissing(fn func(key string) error) AccessorOption {
	return func(a *Accessor) {
		if fn != nil {
			a.missing = fn
		}
	}
}

// WithMissingIn makes missing-key errors name the store, e.g. "POST data".
func WithMissingIn(where string) AccessorOption {
	return WithMissing(func(key string) error {
		return &MissingKeyError{Key: key, Where: where}
	})
}

// WithGuard installs a check run before every Get and Set. A non-nil
// error from fn is returned as is, e.g. while a session is paused.
func WithGuard(fn func() error) AccessorOption {
	return func(a *Accessor) {
		a.guard = fn
	}
}

// NewAccessor creates an Accessor over the given backend.
func NewAccessor(b Backend, opts ...AccessorOption) *Accessor {
	if b == nil {
		panic("input: nil backend")
	}
	a := &Accessor{
		backend: b,
		missing: func(key string) error { return &MissingKeyError{Key: key} },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Has reports whether the key resolves in the backing store.
func (a *Accessor) Has(key string) bool {
	return a.backend.Has(key)
}

// Get returns the stored value, falling back to def when it is not nil.
func (a *Accessor) Get(key string, def Value) (Value, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if v, ok := a.backend.Lookup(key); ok && v != nil {
		return v, nil
	}
	if def != nil {
		return def, nil
	}
	return nil, a.missing(key)
}

// Set overwrites the value stored under key.
func (a *Accessor) Set(key string, v Value) error {
	if err := a.check(); err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: nil value for key %s", ErrUnsupportedValue, key)
	}
	return a.backend.Store(key, v)
}

// GetString returns a Text value without coercion.
func (a *Accessor) GetString(key string, def ...string) (string, error) {
	v, err := validated[Text](a, key, KindText, optional(def, func(s string) Value { return Text(s) }))
	return string(v), err
}

// GetInt returns an Int value without coercion.
func (a *Accessor) GetInt(key string, def ...int64) (int64, error) {
	v, err := validated[Int](a, key, KindInt, optional(def, func(i int64) Value { return Int(i) }))
	return int64(v), err
}

// GetFloat returns a Float value without coercion.
func (a *Accessor) GetFloat(key string, def ...float64) (float64, error) {
	v, err := validated[Float](a, key, KindFloat, optional(def, func(f float64) Value { return Float(f) }))
	return float64(v), err
}

// GetBool returns a Bool value without coercion.
func (a *Accessor) GetBool(key string, def ...bool) (bool, error) {
	v, err := validated[Bool](a, key, KindBool, optional(def, func(b bool) Value { return Bool(b) }))
	return bool(v), err
}

// GetArray returns an Array value without coercion.
func (a *Accessor) GetArray(key string, def ...Array) (Array, error) {
	return validated[Array](a, key, KindArray, optional(def, func(arr Array) Value { return arr }))
}

// GetDateTime returns a DateTime value without coercion or parsing.
func (a *Accessor) GetDateTime(key string, def ...time.Time) (time.Time, error) {
	v, err := validated[DateTime](a, key, KindDateTime, optional(def, func(t time.Time) Value { return At(t) }))
	return v.Time, err
}

// GetAsString returns the value cast to a string.
func (a *Accessor) GetAsString(key string, def ...string) (string, error) {
	v, err := a.Get(key, optional(def, func(s string) Value { return Text(s) }))
	if err != nil {
		return "", err
	}
	return AsString(v), nil
}

// GetAsInt returns the value cast to an integer.
func (a *Accessor) GetAsInt(key string, def ...int64) (int64, error) {
	v, err := a.Get(key, optional(def, func(i int64) Value { return Int(i) }))
	if err != nil {
		return 0, err
	}
	return AsInt(v), nil
}

// GetAsFloat returns the value cast to a float.
func (a *Accessor) GetAsFloat(key string, def ...float64) (float64, error) {
	v, err := a.Get(key, optional(def, func(f float64) Value { return Float(f) }))
	if err != nil {
		return 0, err
	}
	return AsFloat(v), nil
}

// GetAsBool returns the value cast to a boolean.
func (a *Accessor) GetAsBool(key string, def ...bool) (bool, error) {
	v, err := a.Get(key, optional(def, func(b bool) Value { return Bool(b) }))
	if err != nil {
		return false, err
	}
	return AsBool(v), nil
}

// GetAsArray returns the value as an Array, wrapping scalars in a
// one-element Array.
func (a *Accessor) GetAsArray(key string, def ...Array) (Array, error) {
	v, err := a.Get(key, optional(def, func(arr Array) Value { return arr }))
	if err != nil {
		return nil, err
	}
	return AsArray(v), nil
}

// GetAsDateTime returns a DateTime value as is, or parses a Text value.
func (a *Accessor) GetAsDateTime(key string, def ...time.Time) (time.Time, error) {
	v, err := a.Get(key, optional(def, func(t time.Time) Value { return At(t) }))
	if err != nil {
		return time.Time{}, err
	}
	t, err := AsDateTime(v)
	if err != nil {
		var te *TypeError
		if errors.As(err, &te) {
			te.Key = key
		}
		return time.Time{}, err
	}
	return t, nil
}

func (a *Accessor) SetString(key string, v string) error      { return a.Set(key, Text(v)) }
func (a *Accessor) SetInt(key string, v int64) error          { return a.Set(key, Int(v)) }
func (a *Accessor) SetFloat(key string, v float64) error      { return a.Set(key, Float(v)) }
func (a *Accessor) SetBool(key string, v bool) error          { return a.Set(key, Bool(v)) }
func (a *Accessor) SetArray(key string, v Array) error        { return a.Set(key, v) }
func (a *Accessor) SetDateTime(key string, v time.Time) error { return a.Set(key, At(v)) }

func (a *Accessor) check() error {
	if a.guard == nil {
		return nil
	}
	return a.guard()
}

func validated[T Value](a *Accessor, key string, kind Kind, def Value) (T, error) {
	var zero T
	v, err := a.Get(key, def)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, mismatch(key, kind, v)
	}
	return typed, nil
}

// optional turns the first variadic default into a Value, or nil when none.
func optional[T any](def []T, wrap func(T) Value) Value {
	if len(def) == 0 {
		return nil
	}
	return wrap(def[0])
}
