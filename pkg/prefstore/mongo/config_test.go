package mongo_test

import (
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/prefstore/mongo"
)

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"MONGODB_DATABASE",
		"MONGODB_CONNECT_TIMEOUT",
		"MONGODB_MAX_POOL_SIZE",
		"MONGODB_RETRY_WRITES",
		"MONGODB_RETRY_READS",
		"MONGODB_RETRY_ATTEMPTS",
		"MONGODB_RETRY_INTERVAL",
	} {
		os.Unsetenv(key)
	}
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	var cfg mongo.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "mongodb://localhost:27017", cfg.ConnectionURL)
	assert.Equal(t, "localekit", cfg.Database)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, uint64(16), cfg.MaxPoolSize)
	assert.True(t, cfg.RetryWrites)
	assert.True(t, cfg.RetryReads)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "identity")
	t.Setenv("MONGODB_MAX_POOL_SIZE", "4")
	t.Setenv("MONGODB_RETRY_ATTEMPTS", "1")

	var cfg mongo.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "mongodb://db.internal:27017", cfg.ConnectionURL)
	assert.Equal(t, "identity", cfg.Database)
	assert.Equal(t, uint64(4), cfg.MaxPoolSize)
	assert.Equal(t, 1, cfg.RetryAttempts)
}

func TestConfigRequiresURL(t *testing.T) {
	os.Unsetenv("MONGODB_URL")

	var cfg mongo.Config
	require.Error(t, env.Parse(&cfg))
}
