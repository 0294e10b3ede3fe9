// Package pg provides a PostgreSQL-backed preference store on top of a pgx
// connection pool, with a retrying Connect helper and an embedded goose
// migration that creates the preference table.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/localekit/pkg/prefstore/pg"
//	)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//	    // handle error
//	}
//
//	store := pg.New(pool)
//
// The store satisfies prefstore.Store and can be handed straight to the
// locale manager.
package pg
