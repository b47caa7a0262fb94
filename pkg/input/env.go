package input

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environ is a handle to a set of environment variables.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	// Snapshot returns a copy of all variables.
	Snapshot() map[string]string
}

// OSEnviron reads and writes the live process environment.
type OSEnviron struct{}

func (OSEnviron) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnviron) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (OSEnviron) Snapshot() map[string]string         { return env.ToMap(os.Environ()) }

// MapEnviron is an isolated environment, useful in tests.
type MapEnviron map[string]string

func (m MapEnviron) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnviron) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	m[key] = value
	return nil
}

func (m MapEnviron) Snapshot() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Env is the environment variable source. Values are always read live,
// so changes made outside the source between calls are observed.
// Everything stored is converted to text with AsString.
type Env struct {
	*Accessor
	environ Environ
}

// NewEnv creates an Env over environ. A nil environ means the process
// environment.
func NewEnv(environ Environ) *Env {
	if environ == nil {
		environ = OSEnviron{}
	}
	e := &Env{environ: environ}
	e.Accessor = NewAccessor(envBackend{environ: environ})
	return e
}

// Bind decodes environment variables into a struct tagged for
// github.com/caarlos0/env, e.g. `env:"PORT" envDefault:"8080"`.
func (e *Env) Bind(v any) error {
	if err := env.ParseWithOptions(v, env.Options{Environment: e.environ.Snapshot()}); err != nil {
		return errors.Join(ErrBind, err)
	}
	return nil
}

// LoadDotenv reads the given .env files (default ".env") and sets every
// variable that is not already present.
func (e *Env) LoadDotenv(paths ...string) error {
	return e.loadDotenv(false, paths)
}

// OverloadDotenv is like LoadDotenv but overwrites existing variables.
func (e *Env) OverloadDotenv(paths ...string) error {
	return e.loadDotenv(true, paths)
}

func (e *Env) loadDotenv(overwrite bool, paths []string) error {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return errors.Join(ErrDotenv, err)
	}
	for k, v := range vars {
		if _, exists := e.environ.LookupEnv(k); exists && !overwrite {
			continue
		}
		if err := e.environ.Setenv(k, v); err != nil {
			return errors.Join(ErrDotenv, err)
		}
	}
	return nil
}

type envBackend struct {
	environ Environ
}

func (b envBackend) Has(key string) bool {
	_, ok := b.environ.LookupEnv(key)
	return ok
}

func (b envBackend) Lookup(key string) (Value, bool) {
	v, ok := b.environ.LookupEnv(key)
	if !ok {
		return nil, false
	}
	return Text(v), true
}

func (b envBackend) Store(key string, v Value) error {
	return b.environ.Setenv(key, AsString(v))
}
