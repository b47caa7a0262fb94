package main

// AppConfig selects the demo's session backend and the slice of the
// environment it exposes.
type AppConfig struct {
	// SessionBackend is memory, bolt, redis, postgres or mongo.
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"`

	// EnvPrefix limits GET /env/{key} to variables named EnvPrefix+key.
	EnvPrefix string `env:"DEMO_ENV_PREFIX" envDefault:"DEMO_"`
}
