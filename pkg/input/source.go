package input

import "time"

// Source is the full accessor contract shared by every input source.
type Source interface {
	// Has reports whether the key currently resolves in the backing store.
	Has(key string) bool

	// Get returns the stored value, or def when the key is absent and def is
	// not nil. Otherwise it returns a *MissingKeyError.
	Get(key string, def Value) (Value, error)

	// Set overwrites the value stored under key.
	Set(key string, v Value) error

	GetString(key string, def ...string) (string, error)
	GetInt(key string, def ...int64) (int64, error)
	GetFloat(key string, def ...float64) (float64, error)
	GetBool(key string, def ...bool) (bool, error)
	GetArray(key string, def ...Array) (Array, error)
	GetDateTime(key string, def ...time.Time) (time.Time, error)

	GetAsString(key string, def ...string) (string, error)
	GetAsInt(key string, def ...int64) (int64, error)
	GetAsFloat(key string, def ...float64) (float64, error)
	GetAsBool(key string, def ...bool) (bool, error)
	GetAsArray(key string, def ...Array) (Array, error)
	GetAsDateTime(key string, def ...time.Time) (time.Time, error)

	SetString(key string, v string) error
	SetInt(key string, v int64) error
	SetFloat(key string, v float64) error
	SetBool(key string, v bool) error
	SetArray(key string, v Array) error
	SetDateTime(key string, v time.Time) error
}

// Backend is the pair of primitives a concrete source supplies.
// The Accessor builds every typed operation on top of it.
type Backend interface {
	Has(key string) bool
	Lookup(key string) (Value, bool)
	Store(key string, v Value) error
}
