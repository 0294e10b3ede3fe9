// Package mongo provides a MongoDB-backed preference store together with
// retrying connect helpers.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/localekit/pkg/prefstore/mongo"
//	)
//
//	db, err := mongo.ConnectDatabase(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//
//	store := mongo.NewStore(db)
//
// The store satisfies prefstore.Store and can be handed straight to the
// locale manager. One document per subject, upserted on every set.
package mongo
