package boltstore

import "time"

// Config describes the database file in BOLT_* environment variables.
type Config struct {
	Path        string        `env:"BOLT_SESSION_PATH" envDefault:"sessions.db"` // Path of the database file, created when missing.
	OpenTimeout time.Duration `env:"BOLT_OPEN_TIMEOUT" envDefault:"5s"`          // OpenTimeout bounds waiting for the file lock held by another process.
}
