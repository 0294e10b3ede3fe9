// Package redis provides a Redis-backed preference store together with a
// Connect helper that retries until the server is reachable.
//
// Configuration is described by the Config struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/localekit/pkg/prefstore/redis"
//	)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	store := redis.NewFromConfig(client, cfg)
//
// Keyspace settings can also be given directly:
//
//	store := redis.New(client, redis.WithTTL(90*24*time.Hour))
//
// The store satisfies prefstore.Store and can be handed straight to the
// locale manager.
package redis
