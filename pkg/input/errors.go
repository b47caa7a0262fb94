package input

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey indicates a key is absent and no default was supplied
	ErrMissingKey = errors.New("input.missing_key")

	// ErrTypeMismatch indicates the stored value has a different kind than requested
	ErrTypeMismatch = errors.New("input.type_mismatch")

	// ErrUnsupportedValue indicates a Go value has no Value representation
	ErrUnsupportedValue = errors.New("input.unsupported_value")

	// ErrInvalidBody indicates the request body could not be parsed
	ErrInvalidBody = errors.New("input.invalid_body")

	// ErrDateTimeFormat indicates text could not be parsed as a date-time
	ErrDateTimeFormat = errors.New("input.datetime_format")

	// ErrInvalidKey indicates a key the backing store cannot hold
	ErrInvalidKey = errors.New("input.invalid_key")

	// ErrBind indicates environment variables could not be decoded into a struct
	ErrBind = errors.New("input.bind_failed")

	// ErrDotenv indicates a .env file could not be loaded
	ErrDotenv = errors.New("input.dotenv_failed")
)

// MissingKeyError is returned when a key is absent from the backing store.
type MissingKeyError struct {
	Key string
	// Where names the store in the message, e.g. "POST data". Optional.
	Where string
}

func (e *MissingKeyError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("the key %s was not found in the %s", e.Key, e.Where)
	}
	return fmt.Sprintf("the key %s is missing", e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// TypeError is returned when a value cannot be served as the requested kind.
type TypeError struct {
	Key      string
	Expected string
	Actual   Kind
	// Err is the underlying parse failure, if any.
	Err error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("key %s: unable to create %s: %v", e.Key, e.Expected, e.Err)
	}
	return fmt.Sprintf("key %s: expected value of type %s, got %s", e.Key, e.Expected, e.Actual)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

func mismatch(key string, expected Kind, got Value) error {
	return &TypeError{Key: key, Expected: expected.String(), Actual: KindOf(got)}
}
