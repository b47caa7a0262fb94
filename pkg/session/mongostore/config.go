package mongostore

import "time"

// Config represents the configuration for the database.
type Config struct {
	// ConnectionURL is the URL of the database.
	ConnectionURL string `env:"MONGODB_URL,required"`
	// Database and Collection name where sessions are kept.
	Database   string `env:"MONGODB_DATABASE" envDefault:"inputkit"`
	Collection string `env:"MONGODB_SESSIONS_COLLECTION" envDefault:"sessions"`

	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`

	// RetryAttempts is the number of connection attempts, RetryInterval the pause between them.
	RetryAttempts int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}
