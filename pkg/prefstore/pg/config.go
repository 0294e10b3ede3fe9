package pg

import "time"

// Config describes the PostgreSQL pool and the migration bookkeeping for
// the preference table.
type Config struct {
	// ConnectionString is a postgres:// connection string.
	ConnectionString string `env:"PG_CONN_URL,required"`
	// MaxOpenConns caps the pool; preference lookups are cheap point reads.
	MaxOpenConns int32 `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	// MaxIdleConns is the floor of warm connections the pool keeps.
	MaxIdleConns int32 `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	// HealthCheckPeriod is how often idle connections are verified.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	// MaxConnIdleTime retires connections idle longer than this.
	MaxConnIdleTime time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	// MaxConnLifetime retires connections older than this.
	MaxConnLifetime time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	// RetryAttempts is how many times Connect tries before giving up.
	RetryAttempts int `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	// RetryInterval is the base wait between attempts; it grows linearly.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`

	// MigrationsTable records applied migration versions, named so the
	// module can share a database with the host application's own goose
	// bookkeeping.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"locale_schema_migrations"`
}
