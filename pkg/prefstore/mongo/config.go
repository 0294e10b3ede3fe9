package mongo

import "time"

// Config describes the MongoDB connection for the preference store. Pool
// knobs beyond a connection cap are left at their driver defaults:
// preference traffic is single-document point reads and upserts.
type Config struct {
	// ConnectionURL is the mongodb:// URL of the server.
	ConnectionURL string `env:"MONGODB_URL,required"`
	// Database is the database preferences are stored in.
	Database string `env:"MONGODB_DATABASE" envDefault:"localekit"`
	// ConnectTimeout bounds the dial phase of each attempt.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	// MaxPoolSize caps concurrent connections to the server.
	MaxPoolSize uint64 `env:"MONGODB_MAX_POOL_SIZE" envDefault:"16"`
	// RetryWrites lets the driver retry upserts on transient failures.
	RetryWrites bool `env:"MONGODB_RETRY_WRITES" envDefault:"true"`
	// RetryReads lets the driver retry lookups on transient failures.
	RetryReads bool `env:"MONGODB_RETRY_READS" envDefault:"true"`
	// RetryAttempts is how many times Connect tries before giving up.
	RetryAttempts int `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	// RetryInterval is the wait between attempts.
	RetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}
