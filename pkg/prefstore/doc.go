// Package prefstore persists per-subject preference values, primarily the
// language preference a visitor has expressed. It is the server-side
// counterpart of the preference cookie: when a store is configured, the
// preference survives cookie loss and follows an authenticated user across
// devices.
//
// The package is storage-agnostic: any backend that satisfies the Store
// interface can be plugged in. A concurrent in-memory implementation ships
// out of the box; Redis, Postgres and MongoDB backends live in the
// subpackages of this directory.
//
// # Usage
//
//	import "github.com/dmitrymomot/localekit/pkg/prefstore"
//
//	store := prefstore.NewMemoryStore()
//	if err := store.Set(ctx, "visitor-42", "fr-FR"); err != nil {
//	    // handle error
//	}
//
//	lang, err := store.Get(ctx, "visitor-42")
//	if errors.Is(err, prefstore.ErrNotFound) {
//	    // no preference recorded yet
//	}
//
// Subjects are opaque strings. Callers decide what identifies a subject: a
// visitor cookie value, a user ID, a session token.
package prefstore
