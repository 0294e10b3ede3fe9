package redis

import "time"

// Config describes the Redis connection and the preference keyspace.
type Config struct {
	// ConnectionURL is a redis:// URL, password and DB index included.
	ConnectionURL string `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	// RetryAttempts is how many times Connect tries before giving up.
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	// RetryInterval is the wait between attempts.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	// ConnectTimeout bounds all attempts together.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	// KeyPrefix namespaces preference keys in a shared instance.
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"localepref:"`
	// PrefTTL expires stored preferences; zero keeps them forever.
	PrefTTL time.Duration `env:"REDIS_PREF_TTL" envDefault:"0"`
}
